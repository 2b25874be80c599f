package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airfield-ops/towerlog/internal/config"
	"airfield-ops/towerlog/internal/db"
	"airfield-ops/towerlog/internal/logging"
	"airfield-ops/towerlog/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Towerlog starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.AutoMigrate(gormDB); err != nil {
		logging.Error("Failed to migrate schema", "error", err.Error())
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	logging.Info("Schema migrated")

	upSince := time.Now()

	router, err := routes.RegisterRoutes(cfg, upSince)
	if err != nil {
		logging.Error("Failed to initialize router", "error", err.Error())
		log.Fatalf("Failed to initialize router: %v", err)
	}

	// Metrics endpoint lives outside the chi router so it skips the
	// request middleware stack.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
