package lexicon

import (
	"testing"

	"github.com/sunshine-labs/sunshine/internal/models"
)

func TestLoadEmbedded(t *testing.T) {
	l, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(l.Crisis.SelfHarm) == 0 {
		t.Error("expected self-harm phrase list to be populated")
	}
	if len(l.Crisis.Violent) == 0 {
		t.Error("expected violent phrase list to be populated")
	}
	if len(l.Issues) == 0 {
		t.Fatal("expected issue keyword lists to be populated")
	}
	if l.Issues[0].Issue != models.IssueChildhoodTrauma {
		t.Errorf("expected childhood_trauma to have top precedence, got %q", l.Issues[0].Issue)
	}
}

func TestSynonymsFor(t *testing.T) {
	l := Default()
	if syns := l.SynonymsFor(models.EmotionSad); len(syns) == 0 {
		t.Error("expected synonyms for sad")
	}
	if syns := l.SynonymsFor(models.Emotion("no_such_emotion")); syns != nil {
		t.Errorf("expected nil for unknown emotion, got %v", syns)
	}
}

func TestCoreEmotionsHaveSynonyms(t *testing.T) {
	l := Default()
	for _, core := range l.CoreEmotions {
		if l.SynonymsFor(core) == nil {
			t.Errorf("core emotion %q has no synonym entry", core)
		}
	}
}

func TestHiPattern(t *testing.T) {
	for _, msg := range []string{"hi", "hii", "hiii!", "hi there", "hi, sunshine"} {
		if !Hi.MatchString(msg) {
			t.Errorf("Hi should match %q", msg)
		}
	}
	for _, msg := range []string{"high", "history", "this is it"} {
		if Hi.MatchString(msg) {
			t.Errorf("Hi should not match %q", msg)
		}
	}
}

func TestNamePatternsCapture(t *testing.T) {
	cases := map[string]string{
		"my name is jordan":  "jordan",
		"call me sam please": "sam",
		"i'm alex":           "alex",
	}
	for msg, want := range cases {
		var got string
		for _, re := range NamePatterns {
			if m := re.FindStringSubmatch(msg); m != nil {
				got = m[1]
				break
			}
		}
		if got != want {
			t.Errorf("name capture for %q = %q, want %q", msg, got, want)
		}
	}
}
