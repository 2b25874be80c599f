package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"airfield-ops/towerlog/internal/constants"
	"airfield-ops/towerlog/internal/db/repositories"
	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.Airport{},
		&gormModels.Aircraft{},
		&gormModels.Pilot{},
		&gormModels.Flight{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newAircraftService(t *testing.T) (*AircraftService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewAircraftService(repositories.NewAircraftRepository(db)), db
}

func TestAircraftService_Create_NormalizesTailNumber(t *testing.T) {
	svc, _ := newAircraftService(t)
	ctx := context.Background()

	ownerState := "md"
	created, err := svc.Create(ctx, dtos.AircraftCreateRequest{
		TailNumber:   "n12345",
		Manufacturer: "Cessna",
		Model:        "172S",
		Category:     constants.CategorySingleEngine,
		OwnerName:    "Frederick Flying Club",
		OwnerState:   &ownerState,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.TailNumber != "N12345" {
		t.Errorf("Expected tail number N12345, got %s", created.TailNumber)
	}
	if created.OwnerState == nil || *created.OwnerState != "MD" {
		t.Error("Expected owner state stored upper-case")
	}
	if created.NumEngines != 1 {
		t.Errorf("Expected default engine count 1, got %d", created.NumEngines)
	}
	if !created.IsActive {
		t.Error("Expected aircraft to default to active")
	}
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	// Lookup is case-insensitive
	fetched, err := svc.GetByTailNumber(ctx, "n12345")
	if err != nil {
		t.Fatalf("Expected lookup to succeed, got %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("Expected id %d, got %d", created.ID, fetched.ID)
	}
}

func TestAircraftService_Create_DuplicateTailNumber(t *testing.T) {
	svc, _ := newAircraftService(t)
	ctx := context.Background()

	req := dtos.AircraftCreateRequest{
		TailNumber:   "N12345",
		Manufacturer: "Cessna",
		Model:        "172S",
		Category:     constants.CategorySingleEngine,
		OwnerName:    "Frederick Flying Club",
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Expected first create to succeed, got %v", err)
	}

	// Same tail number in a different case must conflict
	req.TailNumber = "n12345"
	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}

func TestAircraftService_Create_InvalidCategory(t *testing.T) {
	svc, _ := newAircraftService(t)

	_, err := svc.Create(context.Background(), dtos.AircraftCreateRequest{
		TailNumber: "N99999",
		Category:   constants.AircraftCategory("spaceship"),
		OwnerName:  "Nobody",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestAircraftService_Update_PartialLeavesOtherFieldsAlone(t *testing.T) {
	svc, _ := newAircraftService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dtos.AircraftCreateRequest{
		TailNumber:   "N5532K",
		Manufacturer: "Piper",
		Model:        "PA-28",
		Category:     constants.CategorySingleEngine,
		OwnerName:    "Jordan Avery",
	})
	if err != nil {
		t.Fatalf("Expected create to succeed, got %v", err)
	}

	newOwner := "Avery Aviation LLC"
	updated, err := svc.Update(ctx, created.ID, dtos.AircraftUpdateRequest{
		OwnerName: &newOwner,
	})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if updated.OwnerName != newOwner {
		t.Errorf("Expected owner %q, got %q", newOwner, updated.OwnerName)
	}
	if updated.Manufacturer != "Piper" || updated.Model != "PA-28" {
		t.Error("Expected untouched fields to keep their values")
	}
	if updated.TailNumber != "N5532K" {
		t.Errorf("Expected tail number unchanged, got %s", updated.TailNumber)
	}
	if !updated.IsActive {
		t.Error("Expected active flag unchanged")
	}
}

func TestAircraftService_Delete_NotFound(t *testing.T) {
	svc, _ := newAircraftService(t)

	err := svc.Delete(context.Background(), 4040)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
