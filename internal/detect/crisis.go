package detect

import (
	"strings"

	"github.com/sunshine-labs/sunshine/internal/lexicon"
	"github.com/sunshine-labs/sunshine/internal/models"
)

// Crisis screens the message for crisis language. Self-harm phrases
// are checked before violent ones: a message carrying both is treated
// as self-harm, the more urgent concern for the client themselves.
func (d *Detector) Crisis(message string) models.CrisisType {
	text := strings.ToLower(message)
	if containsAny(text, d.lex.Crisis.SelfHarm) {
		return models.CrisisSelfHarm
	}
	for _, re := range lexicon.CrisisPhrasePatterns {
		if re.MatchString(text) {
			return models.CrisisSelfHarm
		}
	}
	if containsAny(text, d.lex.Crisis.Violent) {
		return models.CrisisViolentThoughts
	}
	return models.CrisisNone
}

// AngerLevel grades a violent-thoughts message by urgency. Any
// immediate-concern phrase forces critical; otherwise two or more
// critical markers are critical, a single critical marker or any
// venting marker is venting, and everything else is processing.
func (d *Detector) AngerLevel(message string) models.AngerLevel {
	text := strings.ToLower(message)
	if containsAny(text, d.lex.Anger.Immediate) {
		return models.AngerCritical
	}
	critical := countMatches(text, d.lex.Anger.Critical)
	if critical >= 2 {
		return models.AngerCritical
	}
	if critical == 1 || containsAny(text, d.lex.Anger.Venting) {
		return models.AngerVenting
	}
	return models.AngerProcessing
}

// Hopeless reports whether the message carries hopelessness language,
// either from the phrase list or a future-tense "never" construction.
func (d *Detector) Hopeless(message string) bool {
	text := strings.ToLower(message)
	if containsAny(text, d.lex.Hopelessness) {
		return true
	}
	for _, re := range lexicon.NeverPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
