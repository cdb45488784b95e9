package repository

import (
	"log"
	"sync"
)

// SavedSlot is the durable slot the saved-question list is mirrored to.
// Implementations live in the services package.
type SavedSlot interface {
	Load() ([]string, error)
	Store(ids []string) error
}

// SavedRepo holds the saved-question id set, order-preserving, and writes
// it through to the slot on every change. Slot failures never propagate:
// the in-memory state stays authoritative for the session.
type SavedRepo struct {
	mu   sync.RWMutex
	ids  []string
	slot SavedSlot
}

func GetSavedRepo(slot SavedSlot) *SavedRepo {
	r := &SavedRepo{slot: slot}
	if slot == nil {
		return r
	}
	ids, err := slot.Load()
	if err != nil {
		log.Printf("saved questions: load failed, starting empty: %v", err)
		return r
	}
	r.ids = ids
	return r
}

// Toggle flips membership for the given question id and reports whether
// the question is saved afterwards.
func (r *SavedRepo) Toggle(questionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := true
	for i, id := range r.ids {
		if id == questionID {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			saved = false
			break
		}
	}
	if saved {
		r.ids = append(r.ids, questionID)
	}
	r.persist()
	return saved
}

func (r *SavedRepo) IsSaved(questionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		if id == questionID {
			return true
		}
	}
	return false
}

func (r *SavedRepo) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.ids...)
}

// persist mirrors the current set to the slot. Caller must hold the lock.
func (r *SavedRepo) persist() {
	if r.slot == nil {
		return
	}
	if err := r.slot.Store(append([]string(nil), r.ids...)); err != nil {
		log.Printf("saved questions: write failed: %v", err)
	}
}
