package detect

import (
	"strings"

	"github.com/sunshine-labs/sunshine/internal/lexicon"
	"github.com/sunshine-labs/sunshine/internal/models"
)

// normalizeNegation rewrites negated wellness statements so the
// synonym lookup reads them correctly: "not feeling good" becomes a
// bad-feeling statement, "not sad" becomes a neutral one.
func (d *Detector) normalizeNegation(text string) string {
	for _, phrase := range d.lex.Negation.WellnessPhrases {
		text = strings.ReplaceAll(text, phrase, "feeling bad")
	}
	for _, neg := range d.lex.Negation.Words {
		for _, pos := range d.lex.Negation.PositiveWords {
			text = strings.ReplaceAll(text, neg+" feeling "+pos, "feeling bad")
			text = strings.ReplaceAll(text, neg+" "+pos, "bad")
		}
		for _, negative := range d.lex.Negation.NegativeWords {
			text = strings.ReplaceAll(text, neg+" feeling "+negative, "feeling okay")
			text = strings.ReplaceAll(text, neg+" "+negative, "okay")
		}
	}
	return text
}

// lookupWord maps a single captured feeling word to an emotion via the
// synonym table, in table order. It returns EmotionNone for words the
// table does not know.
func (d *Detector) lookupWord(word string) models.Emotion {
	word = strings.Trim(word, ".!?,")
	for _, entry := range d.lex.Emotions {
		for _, syn := range entry.Synonyms {
			if !strings.Contains(syn, " ") && word == syn {
				return entry.Emotion
			}
		}
	}
	return models.EmotionNone
}

// lookupText scans the whole message for synonym phrases. Short
// synonyms are skipped here to avoid incidental substring hits; they
// only count through the word-capture path.
func (d *Detector) lookupText(text string) models.Emotion {
	for _, entry := range d.lex.Emotions {
		for _, syn := range entry.Synonyms {
			if len(syn) < 4 && !strings.Contains(syn, " ") {
				continue
			}
			if strings.Contains(text, syn) {
				return entry.Emotion
			}
		}
	}
	return models.EmotionNone
}

// DirectEmotion identifies the primary emotion a message states or
// strongly implies. The passes run from most to least specific: the
// targeted pattern families first, then first-person feeling captures
// through the synonym table, then a whole-text synonym scan. It
// returns EmotionNone when nothing matches.
func (d *Detector) DirectEmotion(message string) models.Emotion {
	text := d.normalizeNegation(strings.ToLower(message))

	for _, p := range lexicon.BadDayPatterns {
		if p.Re.MatchString(text) {
			return p.Emotion
		}
	}
	for _, p := range lexicon.RelationshipPatterns {
		if p.Re.MatchString(text) {
			return p.Emotion
		}
	}
	for _, re := range lexicon.GriefPatterns {
		if re.MatchString(text) {
			return models.EmotionGrief
		}
	}
	for _, re := range lexicon.MeaningPatterns {
		if re.MatchString(text) {
			return models.EmotionBurnout
		}
	}
	for _, re := range lexicon.MotivationPatterns {
		if re.MatchString(text) {
			return models.EmotionBurnout
		}
	}
	for _, re := range lexicon.CrisisPhrasePatterns {
		if re.MatchString(text) {
			return models.EmotionCrisis
		}
	}

	for _, re := range lexicon.DirectPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if e := d.lookupWord(m[1]); e != models.EmotionNone {
				return e
			}
		}
	}
	for _, re := range lexicon.QuestionPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if e := d.lookupWord(m[1]); e != models.EmotionNone {
				return e
			}
		}
	}
	for _, re := range lexicon.IndirectPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if e := d.lookupWord(m[1]); e != models.EmotionNone {
				return e
			}
		}
	}

	return d.lookupText(text)
}

// Meaning reports whether the message questions purpose or meaning,
// used to route burnout messages to the purpose-focused pool.
func (d *Detector) Meaning(message string) bool {
	text := strings.ToLower(message)
	for _, re := range lexicon.MeaningPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Emotions extracts every core emotion the message mentions, in the
// lexicon's core order, without duplicates.
func (d *Detector) Emotions(message string) []models.Emotion {
	text := d.normalizeNegation(strings.ToLower(message))
	words := map[string]bool{}
	for _, w := range strings.Fields(text) {
		words[strings.Trim(w, ".!?,")] = true
	}

	var found []models.Emotion
	for _, core := range d.lex.CoreEmotions {
		for _, syn := range d.lex.SynonymsFor(core) {
			hit := false
			if strings.Contains(syn, " ") || len(syn) >= 4 {
				hit = strings.Contains(text, syn)
			}
			if !hit && !strings.Contains(syn, " ") {
				hit = words[syn]
			}
			if hit {
				found = append(found, core)
				break
			}
		}
	}
	return found
}
