package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_questions.json")
	slot := NewFileSlot(path)

	// Absent file reads as empty, not as an error.
	ids, err := slot.Load()
	if err != nil {
		t.Fatalf("load of absent slot failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty slot, got %v", ids)
	}

	if err := slot.Store([]string{"q1", "q3"}); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	// A fresh slot instance sees the stored value, like a restart would.
	ids, err = NewFileSlot(path).Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "q1" || ids[1] != "q3" {
		t.Errorf("unexpected ids after reload: %v", ids)
	}
}

func TestFileSlotParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_questions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileSlot(path).Load(); err == nil {
		t.Fatal("expected parse error for corrupt slot")
	}
}
