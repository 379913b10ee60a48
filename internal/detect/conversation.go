package detect

import (
	"strings"

	"github.com/sunshine-labs/sunshine/internal/lexicon"
	"github.com/sunshine-labs/sunshine/internal/models"
)

// ConversationType classifies the conversational move the message
// makes. Greetings are matched first as prefixes so "hi, I'm really
// struggling" still reads as a greeting opener; the phrase lists run
// in a fixed order from social niceties to deeper disclosures; the
// exact-match lists only apply to messages of one or two words so a
// bare "yes" reads as agreement but "yes it got worse" does not.
func (d *Detector) ConversationType(message string) models.ConversationType {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return models.ConversationNone
	}

	if lexicon.Hi.MatchString(text) {
		return models.ConversationGreeting
	}
	for _, g := range d.lex.Conversation.Greetings {
		if strings.HasPrefix(text, g) {
			return models.ConversationGreeting
		}
	}

	ordered := []struct {
		phrases []string
		ctype   models.ConversationType
	}{
		{d.lex.Conversation.HowAreYou, models.ConversationHowAreYou},
		{d.lex.Conversation.FeelingQuestion, models.ConversationFeelingQuestion},
		{d.lex.Conversation.Gratitude, models.ConversationGratitude},
		{d.lex.Conversation.AboutBot, models.ConversationAboutBot},
		{d.lex.Conversation.HelpRequest, models.ConversationHelpRequest},
		{d.lex.Conversation.ProblemStatement, models.ConversationProblemStatement},
		{d.lex.Conversation.PersonalExperience, models.ConversationPersonalExperience},
		{d.lex.Conversation.SeekingUnderstanding, models.ConversationSeekingUnderstanding},
		{d.lex.Conversation.DetailedReflection, models.ConversationDetailedReflection},
		{d.lex.Conversation.DeepFeelings, models.ConversationDeepFeelings},
	}
	for _, entry := range ordered {
		if containsAny(text, entry.phrases) {
			return entry.ctype
		}
	}

	words := strings.Fields(text)
	if len(words) <= 2 {
		bare := strings.Trim(text, ".!?, ")
		for _, w := range d.lex.Conversation.Agreement {
			if bare == w {
				return models.ConversationAgreement
			}
		}
		for _, w := range d.lex.Conversation.Disagreement {
			if bare == w {
				return models.ConversationDisagreement
			}
		}
		for _, w := range d.lex.Conversation.QuestionWords {
			if bare == w || strings.HasPrefix(bare, w+" ") {
				return models.ConversationQuestion
			}
		}
		for _, w := range d.lex.Conversation.MoodWords {
			if bare == w {
				return models.ConversationMoodStatement
			}
		}
	}

	return models.ConversationNone
}
