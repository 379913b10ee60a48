// Package selector picks response variants while avoiding repeats.
//
// Selection prefers variants the client has not seen recently. When a
// pool is nearly exhausted it grows synonym rewrites of the stock
// variants, and only once everything has been used does it fall back
// to a weighted draw that favors the least recently used variant.
package selector

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Diversity produces rewrites of a response used when a pool runs low.
type Diversity interface {
	Variants(response string) []string
}

// Selector draws responses from pools with repeat avoidance. The
// random source is injected so tests can pin the sequence.
type Selector struct {
	rng *rand.Rand
	div Diversity
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) { s.rng = rng }
}

// WithDiversity replaces the synonym rewriter.
func WithDiversity(div Diversity) Option {
	return func(s *Selector) { s.div = div }
}

// New returns a Selector with a seeded source and the default synonym
// rewriter unless options override them.
func New(opts ...Option) *Selector {
	s := &Selector{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		div: synonymDiversity{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick chooses one variant from pool given the variants recently shown
// for the same pool, oldest first. It returns "" only for an empty
// pool.
func (s *Selector) Pick(pool, history []string) string {
	if len(pool) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(history))
	for _, h := range history {
		seen[h] = true
	}

	var available []string
	for _, v := range pool {
		if !seen[v] {
			available = append(available, v)
		}
	}
	if len(available) > 1 {
		return available[s.rng.IntN(len(available))]
	}

	// Pool nearly exhausted: widen it with rewrites before repeating.
	candidates := available
	for _, v := range pool {
		for _, alt := range s.div.Variants(v) {
			if !seen[alt] {
				candidates = append(candidates, alt)
			}
		}
	}
	if len(candidates) > 0 {
		return candidates[s.rng.IntN(len(candidates))]
	}

	return s.weightedRepeat(pool, history)
}

// weightedRepeat draws from a fully-seen pool, penalizing recency:
// the variant shown longest ago carries the most weight.
func (s *Selector) weightedRepeat(pool, history []string) string {
	position := make(map[string]int, len(history))
	for i, h := range history {
		position[h] = i
	}
	weights := make([]float64, len(pool))
	total := 0.0
	for i, v := range pool {
		w := 1.0
		if pos, ok := position[v]; ok {
			w = math.Pow(0.5, float64(len(history)-pos))
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return pool[s.rng.IntN(len(pool))]
	}
	r := s.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}

// synonymDiversity rewrites a response by swapping common phrasings
// for equivalents, yielding one variant per applicable swap.
type synonymDiversity struct{}

var synonymSwaps = [][2]string{
	{"feeling", "experiencing"},
	{"difficult", "challenging"},
	{"hard", "tough"},
	{"I'm sorry", "I'm truly sorry"},
	{"sounds like", "seems like"},
	{"Tell me more", "I'd like to hear more"},
	{"help", "support"},
	{"talk about", "explore"},
	{"right now", "at the moment"},
}

func (synonymDiversity) Variants(response string) []string {
	var out []string
	for _, swap := range synonymSwaps {
		if strings.Contains(response, swap[0]) {
			alt := strings.Replace(response, swap[0], swap[1], 1)
			if alt != response {
				out = append(out, alt)
			}
		}
	}
	return out
}
