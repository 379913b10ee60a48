package tone

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sunshine-labs/sunshine/internal/models"
)

func newTestStyler() *Styler {
	return New(WithRand(rand.New(rand.NewPCG(7, 11))))
}

func TestApplyFormalPassthrough(t *testing.T) {
	s := newTestStyler()
	in := "I am going to listen. However, this matters."
	if got := s.Apply(in, models.StyleFormal, false); got != in {
		t.Errorf("formal style should not rewrite, got %q", got)
	}
}

func TestApplyCasualContractions(t *testing.T) {
	s := newTestStyler()
	got := s.Apply("I am going to help you sort this out.", models.StyleCasual, false)
	if !strings.Contains(got, "gonna") {
		t.Errorf("casual style should contract 'going to', got %q", got)
	}
}

func TestApplyGenZLowercases(t *testing.T) {
	s := newTestStyler()
	got := s.Apply("That sounds really hard.", models.StyleGenZ, true)
	if got != strings.ToLower(got) {
		t.Errorf("gen_z style should lowercase, got %q", got)
	}
	if !strings.Contains(got, "rlly") {
		t.Errorf("gen_z style should apply slang swaps, got %q", got)
	}
}

func TestApplySafetySuppressesEmphasis(t *testing.T) {
	s := newTestStyler()
	in := "Please reach out for support, you can call or text 988 any time."
	for i := 0; i < 200; i++ {
		got := s.Apply(in, models.StyleGenZ, true)
		if strings.Contains(got, "*") {
			t.Fatalf("safety response gained emphasis: %q", got)
		}
		if got != strings.ToLower(got) {
			t.Fatalf("safety response gained caps emphasis: %q", got)
		}
		if !strings.Contains(got, "988") {
			t.Fatalf("hotline number lost in styling: %q", got)
		}
	}
}

func TestEmphasisPreservesParagraphs(t *testing.T) {
	s := newTestStyler()
	in := "That sounds really hard today.\n\nWhat would help most right now?"
	for i := 0; i < 100; i++ {
		got := s.Apply(in, models.StyleGenZ, false)
		if strings.Count(got, "\n\n") != 1 {
			t.Fatalf("paragraph break lost in styling: %q", got)
		}
	}
}

func TestPersonalize(t *testing.T) {
	s := newTestStyler()
	prefixed := 0
	for i := 0; i < 1000; i++ {
		got := s.Personalize("You deserve support.", "Sam")
		if strings.HasPrefix(got, "Sam, ") {
			prefixed++
			if !strings.Contains(got, "you deserve support") {
				t.Fatalf("personalized text should lowercase the original opener, got %q", got)
			}
		} else if got != "You deserve support." {
			t.Fatalf("unexpected rewrite without name prefix: %q", got)
		}
	}
	if prefixed == 0 || prefixed == 1000 {
		t.Errorf("name prefix should apply sometimes, applied %d/1000", prefixed)
	}
	if got := s.Personalize("You deserve support.", ""); got != "You deserve support." {
		t.Errorf("empty name should leave text alone, got %q", got)
	}
}
