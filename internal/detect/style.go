package detect

import (
	"strings"

	"github.com/sunshine-labs/sunshine/internal/lexicon"
	"github.com/sunshine-labs/sunshine/internal/models"
)

// Style scores the client's writing style from one message. Vocabulary
// markers carry most of the weight; punctuation, shouted words, emoji,
// and capitalization discipline break close calls. Gen Z wins ties
// with casual since its markers are a subset of casual speech, and an
// unmarked message stays formal.
func (d *Detector) Style(message string) models.Style {
	lower := strings.ToLower(message)
	words := map[string]bool{}
	for _, w := range strings.Fields(lower) {
		words[strings.Trim(w, ".!?,")] = true
	}

	casual := countStyleMarkers(lower, words, d.lex.Style.Casual)
	casual += len(lexicon.DroppedApostrophe.FindAllString(lower, -1))

	genZ := countStyleMarkers(lower, words, d.lex.Style.GenZ)
	genZ += len(lexicon.MultiPunctuation.FindAllString(message, -1))
	genZ += len(lexicon.ShoutedWord.FindAllString(message, -1))
	genZ += len(lexicon.Emoji.FindAllString(message, -1))

	formal := countStyleMarkers(lower, words, d.lex.Style.Formal)
	if capitalizationRatio(message) > 0.7 {
		formal += 2
	}
	if len(message) > 120 && casual == 0 && genZ == 0 {
		formal++
	}

	if genZ >= casual && genZ >= formal && genZ > 0 {
		return models.StyleGenZ
	}
	if casual >= formal && casual > 0 {
		return models.StyleCasual
	}
	return models.StyleFormal
}

// countStyleMarkers counts vocabulary markers in the message. Markers
// with a space match as substrings; single tokens require an exact
// word so "fr" does not fire inside "friend".
func countStyleMarkers(lower string, words map[string]bool, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(m, " ") {
			if strings.Contains(lower, m) {
				n++
			}
		} else if words[m] {
			n++
		}
	}
	return n
}

// capitalizationRatio is the share of sentence-initial letters that
// are uppercase. A one-sentence lowercase message scores 0.
func capitalizationRatio(message string) float64 {
	starts := lexicon.SentenceInitialWord.FindAllStringSubmatch(message, -1)
	if len(starts) == 0 {
		return 0
	}
	capped := 0
	for _, m := range starts {
		c := m[1][0]
		if c >= 'A' && c <= 'Z' {
			capped++
		}
	}
	return float64(capped) / float64(len(starts))
}
