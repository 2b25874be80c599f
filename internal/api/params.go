package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Query parameter helpers. Absent parameters return nil, which the filter
// layer reads as "no constraint".

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string) (*int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &n, nil
}

func queryInt64(r *http.Request, key string) (*int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &n, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &b, nil
}

func queryTime(r *http.Request, key string) (*time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter, want RFC3339", key)
	}
	return &t, nil
}

// pagination reads skip/limit; zero values defer to per-endpoint defaults
func pagination(r *http.Request) (int, int, error) {
	skip := 0
	limit := 0

	if p, err := queryInt(r, "skip"); err != nil {
		return 0, 0, err
	} else if p != nil {
		if *p < 0 {
			return 0, 0, fmt.Errorf("skip must be >= 0")
		}
		skip = *p
	}

	if p, err := queryInt(r, "limit"); err != nil {
		return 0, 0, err
	} else if p != nil {
		if *p < 0 {
			return 0, 0, fmt.Errorf("limit must be >= 0")
		}
		limit = *p
	}

	return skip, limit, nil
}
