package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPutGet(t *testing.T) {
	store := NewStore(time.Hour)
	set := StudySet{ID: uuid.New(), Topic: "Biology", StudyNotes: "notes"}

	store.Put(set)

	got, ok := store.Get(set.ID)
	if !ok {
		t.Fatal("expected study set to be found")
	}
	if got.Topic != "Biology" || got.StudyNotes != "notes" {
		t.Errorf("unexpected study set: %+v", got)
	}
}

func TestGetUnknownID(t *testing.T) {
	store := NewStore(time.Hour)
	if _, ok := store.Get(uuid.New()); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestExpiry(t *testing.T) {
	store := NewStore(time.Minute)
	current := time.Unix(1000, 0)
	store.now = func() time.Time { return current }

	set := StudySet{ID: uuid.New()}
	store.Put(set)

	if _, ok := store.Get(set.ID); !ok {
		t.Fatal("expected fresh entry to be found")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := store.Get(set.ID); ok {
		t.Error("expected expired entry to be a miss")
	}
}

func TestSweep(t *testing.T) {
	store := NewStore(time.Minute)
	current := time.Unix(1000, 0)
	store.now = func() time.Time { return current }

	fresh := StudySet{ID: uuid.New()}
	stale := StudySet{ID: uuid.New()}
	store.Put(stale)

	current = current.Add(2 * time.Minute)
	store.Put(fresh)

	if evicted := store.Sweep(); evicted != 1 {
		t.Errorf("expected 1 eviction, got %d", evicted)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", store.Len())
	}
	if _, ok := store.Get(fresh.ID); !ok {
		t.Error("fresh entry must survive the sweep")
	}
}
