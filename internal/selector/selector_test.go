package selector

import (
	"math/rand/v2"
	"testing"
)

func newTestSelector() *Selector {
	return New(WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestPickEmptyPool(t *testing.T) {
	s := newTestSelector()
	if got := s.Pick(nil, nil); got != "" {
		t.Errorf("Pick on empty pool = %q, want empty", got)
	}
}

func TestPickAvoidsHistory(t *testing.T) {
	s := newTestSelector()
	pool := []string{"a", "b", "c", "d", "e"}
	history := []string{"a", "b"}
	for i := 0; i < 100; i++ {
		got := s.Pick(pool, history)
		if got == "a" || got == "b" {
			t.Fatalf("trial %d picked recently used variant %q", i, got)
		}
	}
}

func TestPickSingleRemainingUsesVariants(t *testing.T) {
	s := newTestSelector()
	pool := []string{
		"It sounds like this is hard for you.",
		"Tell me more about that feeling.",
	}
	history := []string{"Tell me more about that feeling."}
	seenRewrite := false
	for i := 0; i < 200; i++ {
		got := s.Pick(pool, history)
		if got == "" {
			t.Fatal("Pick returned empty on non-empty pool")
		}
		if got == history[0] {
			t.Fatalf("picked the only recently used variant verbatim: %q", got)
		}
		if got != pool[0] {
			seenRewrite = true
		}
	}
	if !seenRewrite {
		t.Error("expected synonym rewrites to appear when the pool runs low")
	}
}

func TestWeightedRepeatFavorsOldest(t *testing.T) {
	s := newTestSelector()
	pool := []string{"x", "y", "z"}
	history := []string{"x", "y", "z"}
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[s.weightedRepeat(pool, history)]++
	}
	if counts["x"] <= counts["z"] {
		t.Errorf("oldest variant should dominate: x=%d z=%d", counts["x"], counts["z"])
	}
	if counts["x"]+counts["y"]+counts["z"] != 1000 {
		t.Errorf("weighted repeat produced values outside the pool: %v", counts)
	}
}

func TestSynonymDiversityVariantsDiffer(t *testing.T) {
	var d synonymDiversity
	for _, v := range d.Variants("It sounds like this is hard and you need help right now.") {
		if v == "It sounds like this is hard and you need help right now." {
			t.Errorf("variant identical to input: %q", v)
		}
	}
	if got := d.Variants("nothing matches here"); got != nil {
		t.Errorf("expected no variants, got %v", got)
	}
}
