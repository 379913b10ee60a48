// Package trained loads an optional curated corpus of exact
// message-to-response pairs. When a client message matches a trained
// pattern, its replies take precedence over the generated pipeline.
//
// The corpus is a deployment artifact, not an embed: operators curate
// it per installation, and a missing file just means no overrides.
package trained

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type entry struct {
	Patterns []string `json:"patterns"`
	Replies  []string `json:"replies"`
}

type corpusFile struct {
	Entries []entry `json:"entries"`
}

// Corpus maps normalized client messages to reply pools.
type Corpus struct {
	replies map[string][]string
}

// LoadFile reads a corpus from path. A missing file is not an error;
// it returns an empty corpus that matches nothing.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Corpus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("trained.LoadFile: %w", err)
	}

	var file corpusFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("trained.LoadFile: parse %s: %w", path, err)
	}

	c := &Corpus{replies: make(map[string][]string)}
	for i, e := range file.Entries {
		if len(e.Replies) == 0 {
			return nil, fmt.Errorf("trained.LoadFile: entry %d has no replies", i)
		}
		for _, p := range e.Patterns {
			key := Normalize(p)
			if key == "" {
				return nil, fmt.Errorf("trained.LoadFile: entry %d has an empty pattern", i)
			}
			c.replies[key] = e.Replies
		}
	}
	return c, nil
}

// Lookup returns the reply pool for a client message, matching on the
// normalized text. A nil or empty corpus matches nothing.
func (c *Corpus) Lookup(message string) ([]string, bool) {
	if c == nil || len(c.replies) == 0 {
		return nil, false
	}
	pool, ok := c.replies[Normalize(message)]
	return pool, ok
}

// Size reports how many distinct patterns the corpus holds.
func (c *Corpus) Size() int {
	if c == nil {
		return 0
	}
	return len(c.replies)
}

// Normalize lowercases, strips end punctuation, and collapses
// whitespace so near-identical phrasings share a key.
func Normalize(message string) string {
	fields := strings.Fields(strings.ToLower(message))
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".!?,")
	}
	return strings.Join(fields, " ")
}
