package embeddings

import (
	"math"
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "vectors"))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	vec := []float64{0.25, -1.5, 3.75}
	key := cache.Key("nomic-embed-text", "snippet content")

	if _, ok := cache.Get(key); ok {
		t.Fatal("unexpected cache hit before Put")
	}
	if err := cache.Put(key, vec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("cache miss after Put")
	}
	if len(got) != len(vec) {
		t.Fatalf("vector length = %d, want %d", len(got), len(vec))
	}
	for i := range vec {
		if got[i] != vec[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], vec[i])
		}
	}
}

func TestCacheKeyChangesWithContent(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	base := cache.Key("model", "content")
	if cache.Key("model", "content") != base {
		t.Error("key not stable")
	}
	if cache.Key("model", "other content") == base {
		t.Error("key ignores content")
	}
	if cache.Key("other-model", "content") == base {
		t.Error("key ignores model")
	}
}

func TestCachePutRejectsInvalid(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	if err := cache.Put("bad.vec", []float64{math.NaN()}); err == nil {
		t.Error("NaN vector accepted")
	}
	if err := cache.Put("empty.vec", nil); err == nil {
		t.Error("empty vector accepted")
	}
}
