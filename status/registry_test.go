package status

import (
	"sync"
	"testing"
)

func TestMetricMapPointerStable(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	a.Set(1.5)
	b := m.Get("x")
	if a != b {
		t.Fatal("Expected cached pointer on second Get")
	}
	if b.Get() != 1.5 {
		t.Errorf("Expected 1.5, got %f", b.Get())
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Has reports wrong membership")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k).Store(k)
	}
	var keys []string
	m.Range(func(key string, ptr *AtomicString) {
		keys = append(keys, key)
		if ptr.Load() != key {
			t.Errorf("Expected value %s, got %s", key, ptr.Load())
		}
	})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys [a b c], got %v", keys)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	long := "0123456789012345678901234567890123456789EXTRA"
	s.Store(long)
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(got))
	}
}

func TestPublishSnapshotRoundTrip(t *testing.T) {
	r := NewRegistry()
	h := HUD{
		Score:              1250,
		Wave:               3,
		DestroyedCount:     7,
		LiveThreats:        4,
		Health:             80,
		BossActive:         true,
		BossPartsDestroyed: 2,
		BossPartsTotal:     10,
		Tick:               900,
		Paused:             true,
		Started:            true,
		CutscenePending:    false,
		Outcome:            "none",
		Session:            "5f0c3a52-6b0e-4e8f-9a59-0d5d2d6f1b7e",
	}
	r.Publish(h, 100)

	if got := r.Snapshot(); got != h {
		t.Errorf("Expected %+v, got %+v", h, got)
	}
	if ratio := r.Ratios.Get(KeyHealthRatio).Get(); ratio != 0.8 {
		t.Errorf("Expected health ratio 0.8, got %f", ratio)
	}
}

func TestConcurrentPublishAndRead(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			r.Publish(HUD{Score: i, Health: 100}, 100)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if h := r.Snapshot(); h.Score < 0 || h.Score >= 1000 {
				t.Errorf("Score out of range: %d", h.Score)
			}
		}
	}()
	wg.Wait()

	if r.Snapshot().Score != 999 {
		t.Errorf("Expected final score 999, got %d", r.Snapshot().Score)
	}
}

func TestAtomicStringRuneBoundary(t *testing.T) {
	var s AtomicString
	// 39 ASCII bytes then a 3-byte rune straddling the limit
	val := "012345678901234567890123456789012345678★"
	s.Store(val)
	if got := s.Load(); got != val[:39] {
		t.Errorf("Expected cut before the rune, got %q", got)
	}
}

func TestDumpSortedByKind(t *testing.T) {
	r := NewRegistry()
	r.Publish(HUD{Score: 5, Wave: 2, Health: 50, Outcome: "none"}, 100)

	lines := r.Dump()
	if len(lines) != r.Len() {
		t.Fatalf("Expected %d lines, got %d", r.Len(), len(lines))
	}
	want := map[string]bool{
		"hud.score=5":            false,
		"hud.wave=2":             false,
		"hud.health_ratio=0.500": false,
		"hud.outcome=none":       false,
	}
	for _, l := range lines {
		if _, ok := want[l]; ok {
			want[l] = true
		}
	}
	for l, seen := range want {
		if !seen {
			t.Errorf("Expected %q in dump", l)
		}
	}
}
