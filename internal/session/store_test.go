package session

import (
	"reflect"
	"testing"

	"github.com/snipmux/snipmux/internal/models"
)

func TestApplyKeepsExistingID(t *testing.T) {
	store := NewStore()
	store.Apply(Delta{
		"review": {ID: "aaa", MessageID: "m1"},
	})

	// a later message re-injects the snippet; the id must survive
	store.Apply(Delta{
		"review": {ID: "bbb", MessageID: "m2", Implicit: true},
	})

	ref, ok := store.Get("review")
	if !ok {
		t.Fatal("reference missing after apply")
	}
	if ref.ID != "aaa" {
		t.Errorf("id = %q, want original %q", ref.ID, "aaa")
	}
	if ref.MessageID != "m2" || !ref.Implicit {
		t.Errorf("non-id fields not updated: %+v", ref)
	}
}

func TestLoadMissingIsEmpty(t *testing.T) {
	store, err := Load(t.TempDir(), "no-such-session")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(store.Refs) != 0 {
		t.Errorf("expected empty store, got %+v", store.Refs)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := NewStore()
	store.Apply(Delta{
		"review": {ID: "ab3f", MessageID: "m1"},
		"plan":   {ID: "9c2d", MessageID: "m1", Implicit: true},
	})

	if err := store.Save(dir, "s1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir, "s1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Refs, store.Refs) {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded.Refs, store.Refs)
	}
	if got := loaded.Names(); !reflect.DeepEqual(got, []string{"plan", "review"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestReset(t *testing.T) {
	dir := t.TempDir()

	store := NewStore()
	store.Apply(Delta{"review": models.Reference{ID: "ab3f", MessageID: "m1"}})
	if err := store.Save(dir, "s1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Reset(dir, "s1"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	loaded, err := Load(dir, "s1")
	if err != nil {
		t.Fatalf("Load after reset failed: %v", err)
	}
	if len(loaded.Refs) != 0 {
		t.Errorf("store not empty after reset: %+v", loaded.Refs)
	}

	// resetting twice is fine
	if err := Reset(dir, "s1"); err != nil {
		t.Errorf("second Reset failed: %v", err)
	}
}
