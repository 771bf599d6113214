package list

import (
	"testing"

	"github.com/AndrywBarrera/OperativePages/filesystem/models"
)

func setupAccessLog(count int) *ArrayList[models.AccessLogEntry] {
	accessLog := &ArrayList[models.AccessLogEntry]{}
	for i := 1; i <= count; i++ {
		accessLog.Add(models.AccessLogEntry{
			Tick:     i,
			Sequence: i,
			PID:      uint(i % 2),
			File:     "archivo1.txt",
			Mode:     models.ModeRead,
			Outcome:  models.Granted,
		})
	}
	return accessLog
}

func TestArrayList_TailOfAccessLog(t *testing.T) {
	accessLog := setupAccessLog(5)

	recent := accessLog.Tail(3)
	if len(recent) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(recent))
	}
	for i, entry := range recent {
		if entry.Sequence != i+3 {
			t.Errorf("Expected sequence %d at index %d, got %d", i+3, i, entry.Sequence)
		}
	}

	recent[0].Outcome = models.Conflict
	if entry, _ := accessLog.Get(2); entry.Outcome != models.Granted {
		t.Errorf("Expected Tail to return a copy, got outcome %s", entry.Outcome)
	}
}

func TestArrayList_TailBounds(t *testing.T) {
	accessLog := setupAccessLog(2)

	if all := accessLog.Tail(10); len(all) != 2 || all[0].Tick != 1 {
		t.Errorf("Expected the whole log when n exceeds its size, got %+v", all)
	}
	if none := accessLog.Tail(-1); len(none) != 0 {
		t.Errorf("Expected no entries for a negative n, got %+v", none)
	}
}

func TestArrayList_FindAccessEntry(t *testing.T) {
	accessLog := setupAccessLog(4)

	entry, index, found := accessLog.Find(func(e models.AccessLogEntry) bool { return e.PID == 0 })
	if !found || index != 1 || entry.Tick != 2 {
		t.Errorf("Expected first PID 0 entry at index 1 (tick 2), got %+v at %d", entry, index)
	}
}
