// Package tone adapts composed responses to the client's writing
// style and optionally personalizes them with the client's name.
package tone

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/sunshine-labs/sunshine/internal/models"
)

// Chance constants for the random touches. Emphasis never applies to
// safety-critical responses.
const (
	emphasisChance    = 0.30
	personalizeChance = 0.40
)

var casualSwaps = [][2]string{
	{"going to", "gonna"},
	{"want to", "wanna"},
	{"kind of", "kinda"},
	{"a lot of", "lots of"},
	{"Hello", "Hey"},
	{"cannot", "can't"},
}

var genZSwaps = [][2]string{
	{"though", "tho"},
	{"right now", "rn"},
	{"to be honest", "tbh"},
	{"really", "rlly"},
	{"very", "sooo"},
	{"because", "bc"},
}

// Styler applies style transforms. The random source is injected so
// tests can pin the coin flips.
type Styler struct {
	rng *rand.Rand
}

// Option configures a Styler.
type Option func(*Styler)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Styler) { s.rng = rng }
}

// New returns a Styler with a seeded source unless overridden.
func New(opts ...Option) *Styler {
	s := &Styler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply rewrites text for the client's style. Formal text passes
// through untouched. Casual applies light contractions. Gen Z
// lowercases, applies slang swaps, and sometimes emphasizes one word;
// emphasis is suppressed when safety is set so crisis responses stay
// plain.
func (s *Styler) Apply(text string, style models.Style, safety bool) string {
	switch style {
	case models.StyleCasual:
		for _, swap := range casualSwaps {
			text = strings.ReplaceAll(text, swap[0], swap[1])
		}
		return text
	case models.StyleGenZ:
		text = strings.ToLower(text)
		for _, swap := range genZSwaps {
			text = strings.ReplaceAll(text, swap[0], swap[1])
		}
		if !safety && s.rng.Float64() < emphasisChance {
			text = s.emphasizeWord(text)
		}
		return text
	default:
		return text
	}
}

// Personalize prefixes the client's name some of the time. It leaves
// the text alone when no name is known.
func (s *Styler) Personalize(text, name string) string {
	if name == "" || text == "" {
		return text
	}
	if s.rng.Float64() >= personalizeChance {
		return text
	}
	r := []rune(text)
	r[0] = unicode.ToLower(r[0])
	return name + ", " + string(r)
}

// emphasizeWord picks one word of four letters or more in one
// paragraph and renders it in caps or wrapped in asterisks. Paragraph
// breaks are preserved.
func (s *Styler) emphasizeWord(text string) string {
	paras := strings.Split(text, "\n\n")
	pi := s.rng.IntN(len(paras))
	words := strings.Fields(paras[pi])
	var candidates []int
	for i, w := range words {
		if len(strings.Trim(w, ".!?,'")) >= 4 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return text
	}
	i := candidates[s.rng.IntN(len(candidates))]
	trimmed := strings.Trim(words[i], ".!?,")
	suffix := words[i][len(trimmed):]
	if s.rng.Float64() < 0.5 {
		words[i] = strings.ToUpper(trimmed) + suffix
	} else {
		words[i] = "*" + trimmed + "*" + suffix
	}
	paras[pi] = strings.Join(words, " ")
	return strings.Join(paras, "\n\n")
}
