package trained

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissing(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "no-such-corpus.json"))
	if err != nil {
		t.Fatalf("missing corpus file should not error, got %v", err)
	}
	if c.Size() != 0 {
		t.Errorf("missing corpus should be empty, size %d", c.Size())
	}
	if _, ok := c.Lookup("anything"); ok {
		t.Error("empty corpus should match nothing")
	}
}

func TestLoadFileAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	data := `{"entries": [{"patterns": ["what is your name", "whats your name"], "replies": ["I'm Sunshine."]}]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if c.Size() != 2 {
		t.Errorf("expected 2 patterns, got %d", c.Size())
	}
	pool, ok := c.Lookup("  What is your NAME?  ")
	if !ok {
		t.Fatal("expected lookup hit after normalization")
	}
	if len(pool) != 1 || pool[0] != "I'm Sunshine." {
		t.Errorf("unexpected reply pool %v", pool)
	}
}

func TestLoadFileRejectsEmptyReplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	data := `{"entries": [{"patterns": ["hello"], "replies": []}]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for entry without replies")
	}
}

func TestNilCorpusLookup(t *testing.T) {
	var c *Corpus
	if _, ok := c.Lookup("hello"); ok {
		t.Error("nil corpus should match nothing")
	}
}
