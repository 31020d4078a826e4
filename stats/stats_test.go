package stats

import (
	"sync"
	"testing"

	"github.com/sccity/dispatch-etl/logger"
)

func TestRunStatsCounters(t *testing.T) {
	log := logger.NewLogger("stats test", "error", false)
	r := NewRunStats(log)
	if r.RunID == "" {
		t.Fatal("expected a non-empty run id")
	}
	c := r.Entity("Citation")
	c.AddWindow()
	c.AddLoaded()
	c.AddLoaded()
	c.AddDuplicate()
	if c.Loaded != 2 {
		t.Fatalf("expected 2 loaded, got %v", c.Loaded)
	}
	// Same entity name returns the same counters.
	if r.Entity("Citation") != c {
		t.Fatal("expected the same Counters for a repeated entity name")
	}
	if r.HasLoss() {
		t.Fatal("expected no loss with only loaded/duplicate counts")
	}
	c.AddDropped()
	if !r.HasLoss() {
		t.Fatal("expected loss after a dropped row")
	}
}

func TestRunStatsConcurrentUse(t *testing.T) {
	log := logger.NewLogger("stats test", "error", false)
	r := NewRunStats(log)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := r.Entity("AVL")
			for j := 0; j < 100; j++ {
				c.AddLoaded()
			}
		}()
	}
	wg.Wait()
	if got := r.Entity("AVL").Loaded; got != 800 {
		t.Fatalf("expected 800 loaded, got %v", got)
	}
}
