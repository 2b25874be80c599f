package common

import (
	"testing"
	"time"
)

type cachedSnapshot struct {
	Count int      `json:"count"`
	Codes []string `json:"codes"`
}

func TestCacheService_GetInto(t *testing.T) {
	c := NewCacheService(60, 600)

	c.Set("snapshot", &cachedSnapshot{Count: 3, Codes: []string{"KFDK", "KGAI"}}, time.Minute)

	var got cachedSnapshot
	if !c.GetInto("snapshot", &got) {
		t.Fatal("Expected a cache hit")
	}
	if got.Count != 3 {
		t.Errorf("Expected count 3, got %d", got.Count)
	}
	if len(got.Codes) != 2 || got.Codes[0] != "KFDK" {
		t.Errorf("Expected decoded codes, got %v", got.Codes)
	}

	if c.GetInto("missing", &got) {
		t.Error("Expected a miss for an absent key")
	}
}

func TestCacheService_GetAndDelete(t *testing.T) {
	c := NewCacheService(60, 600)

	c.Set("k", "v", time.Minute)
	if v, found := c.Get("k"); !found || v.(string) != "v" {
		t.Errorf("Expected hit with v, got %v/%v", v, found)
	}

	c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}
