package snapshot_test

import (
	"testing"

	"github.com/htoohtoo/storefront/pkg/snapshot"
)

func TestSaveLoadDelete(t *testing.T) {
	s := snapshot.NewMemory()

	rec := snapshot.Record{ID: "2", Email: "customer@example.com", Name: "John Doe", Role: "customer"}
	if err := s.Save("sess-1", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("sess-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot to exist")
	}
	if got != rec {
		t.Errorf("loaded %+v, want %+v", got, rec)
	}

	if err := s.Delete("sess-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Load("sess-1"); ok {
		t.Error("expected snapshot to be gone after Delete")
	}
}

func TestLoadMissing(t *testing.T) {
	s := snapshot.NewMemory()

	_, ok, err := s.Load("never-seen")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("expected no snapshot for unknown session")
	}
}

func TestSnapshotsAreKeyedBySession(t *testing.T) {
	s := snapshot.NewMemory()

	_ = s.Save("a", snapshot.Record{ID: "1", Role: "admin"})
	_ = s.Save("b", snapshot.Record{ID: "2", Role: "customer"})

	recA, _, _ := s.Load("a")
	recB, _, _ := s.Load("b")
	if recA.ID != "1" || recB.ID != "2" {
		t.Errorf("sessions leaked into each other: a=%+v b=%+v", recA, recB)
	}

	_ = s.Delete("a")
	if _, ok, _ := s.Load("b"); !ok {
		t.Error("deleting one session's snapshot removed another's")
	}
}
