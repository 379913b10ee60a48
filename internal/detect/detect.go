// Package detect implements the message analysis passes: crisis
// screening, issue and emotion detection, conversation typing, client
// style scoring, and memory signals (names, topics).
//
// Every detector is a pure function of the message text and the
// lexicon. All matching happens on a lowercased copy except style
// scoring, which needs the original casing.
package detect

import (
	"strings"

	"github.com/sunshine-labs/sunshine/internal/lexicon"
	"github.com/sunshine-labs/sunshine/internal/models"
)

// Detector runs the analysis passes against one lexicon.
type Detector struct {
	lex *lexicon.Lexicon
}

// New returns a Detector over lex, or over the embedded default when
// lex is nil.
func New(lex *lexicon.Lexicon) *Detector {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Detector{lex: lex}
}

// containsAny reports whether text contains any phrase in the list.
func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// countMatches counts how many phrases in the list appear in text.
func countMatches(text string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			n++
		}
	}
	return n
}

// Issue classifies the dominant life issue in the message. Lists are
// checked in lexicon order so the most specific issues win; childhood
// references only count as childhood trauma when a pain word appears
// alongside them.
func (d *Detector) Issue(message string) models.Issue {
	text := strings.ToLower(message)
	for _, entry := range d.lex.Issues {
		if !containsAny(text, entry.Keywords) {
			continue
		}
		if entry.Issue == models.IssueChildhoodTrauma &&
			!containsAny(text, d.lex.ChildhoodPainWords) {
			continue
		}
		return entry.Issue
	}
	return models.IssueGeneral
}

// Name extracts a self-introduced first name, or "" when the message
// carries none. Candidate words that read as feeling or filler words
// are rejected via the stopword list.
func (d *Detector) Name(message string) string {
	text := strings.ToLower(message)
	for _, re := range lexicon.NamePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := m[1]
		if len(candidate) < 2 {
			continue
		}
		stopped := false
		for _, sw := range d.lex.NameStopwords {
			if candidate == sw {
				stopped = true
				break
			}
		}
		if stopped {
			continue
		}
		return strings.ToUpper(candidate[:1]) + candidate[1:]
	}
	return ""
}

// Topics returns the memory topics mentioned in the message, in
// lexicon order, without duplicates.
func (d *Detector) Topics(message string) []string {
	text := strings.ToLower(message)
	var topics []string
	for _, entry := range d.lex.Topics {
		if containsAny(text, entry.Keywords) {
			topics = append(topics, entry.Topic)
		}
	}
	return topics
}
