// Package lexicon carries the phrase lists driving message analysis.
//
// The lists live in an embedded JSON file so they can be reviewed and
// edited without touching detection logic. Load validates the file at
// startup; a missing or empty required list is a configuration error
// and the process should not start.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sunshine-labs/sunshine/internal/models"
)

//go:embed data/lexicon.json
var lexiconJSON []byte

// IssueKeywords binds one issue label to its trigger phrases. Order in
// the Issues slice is the match precedence: earlier entries win.
type IssueKeywords struct {
	Issue    models.Issue `json:"issue"`
	Keywords []string     `json:"keywords"`
}

// EmotionSynonyms binds one emotion label to its vocabulary. Order in
// the Emotions slice is the lookup precedence.
type EmotionSynonyms struct {
	Emotion  models.Emotion `json:"emotion"`
	Synonyms []string       `json:"synonyms"`
}

// TopicKeywords binds one memory topic to the words that indicate it.
type TopicKeywords struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
}

// CrisisLists holds the highest-priority phrase lists. SelfHarm is
// always checked before Violent.
type CrisisLists struct {
	SelfHarm []string `json:"self_harm"`
	Violent  []string `json:"violent"`
}

// AngerLists grade violent-thought messages by urgency. Immediate
// phrases force the critical level regardless of other signals.
type AngerLists struct {
	Critical  []string `json:"critical"`
	Venting   []string `json:"venting"`
	Immediate []string `json:"immediate"`
}

// ConversationLists holds the phrase lists for conversation-type
// classification. Greetings are matched as prefixes, the rest as
// substrings except the short-message lists which require exact match.
type ConversationLists struct {
	Greetings            []string `json:"greetings"`
	HowAreYou            []string `json:"how_are_you"`
	FeelingQuestion      []string `json:"feeling_question"`
	Gratitude            []string `json:"gratitude"`
	AboutBot             []string `json:"about_bot"`
	HelpRequest          []string `json:"help_request"`
	ProblemStatement     []string `json:"problem_statement"`
	PersonalExperience   []string `json:"personal_experience"`
	SeekingUnderstanding []string `json:"seeking_understanding"`
	DetailedReflection   []string `json:"detailed_reflection"`
	DeepFeelings         []string `json:"deep_feelings"`
	Agreement            []string `json:"agreement"`
	Disagreement         []string `json:"disagreement"`
	QuestionWords        []string `json:"question_words"`
	MoodWords            []string `json:"mood_words"`
}

// NegationLists support rewriting negated wellness statements before
// emotion lookup ("not feeling good" reads as feeling bad).
type NegationLists struct {
	Words           []string `json:"words"`
	WellnessPhrases []string `json:"wellness_phrases"`
	PositiveWords   []string `json:"positive_words"`
	NegativeWords   []string `json:"negative_words"`
}

// StyleLists hold the vocabulary markers for client writing style.
type StyleLists struct {
	Casual []string `json:"casual"`
	GenZ   []string `json:"gen_z"`
	Formal []string `json:"formal"`
}

// Lexicon is the full set of phrase lists used by the detect package.
type Lexicon struct {
	Crisis             CrisisLists       `json:"crisis"`
	Anger              AngerLists        `json:"anger"`
	Hopelessness       []string          `json:"hopelessness"`
	Issues             []IssueKeywords   `json:"issues"`
	ChildhoodPainWords []string          `json:"childhood_pain_words"`
	Conversation       ConversationLists `json:"conversation"`
	Emotions           []EmotionSynonyms `json:"emotions"`
	CoreEmotions       []models.Emotion  `json:"core_emotions"`
	Negation           NegationLists     `json:"negation"`
	Style              StyleLists        `json:"style"`
	Topics             []TopicKeywords   `json:"topics"`
	NameStopwords      []string          `json:"name_stopwords"`
}

// SynonymsFor returns the vocabulary for one emotion, or nil when the
// lexicon carries none.
func (l *Lexicon) SynonymsFor(e models.Emotion) []string {
	for _, entry := range l.Emotions {
		if entry.Emotion == e {
			return entry.Synonyms
		}
	}
	return nil
}

// Load parses and validates the embedded lexicon.
func Load() (*Lexicon, error) {
	var l Lexicon
	if err := json.Unmarshal(lexiconJSON, &l); err != nil {
		return nil, fmt.Errorf("lexicon.Load: parse embedded lexicon: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("lexicon.Load: %w", err)
	}
	return &l, nil
}

func (l *Lexicon) validate() error {
	required := map[string]int{
		"crisis.self_harm":       len(l.Crisis.SelfHarm),
		"crisis.violent":         len(l.Crisis.Violent),
		"anger.critical":         len(l.Anger.Critical),
		"anger.venting":          len(l.Anger.Venting),
		"anger.immediate":        len(l.Anger.Immediate),
		"hopelessness":           len(l.Hopelessness),
		"issues":                 len(l.Issues),
		"childhood_pain_words":   len(l.ChildhoodPainWords),
		"emotions":               len(l.Emotions),
		"core_emotions":          len(l.CoreEmotions),
		"topics":                 len(l.Topics),
		"name_stopwords":         len(l.NameStopwords),
		"style.casual":           len(l.Style.Casual),
		"style.gen_z":            len(l.Style.GenZ),
		"style.formal":           len(l.Style.Formal),
		"conversation.greetings": len(l.Conversation.Greetings),
	}
	for name, n := range required {
		if n == 0 {
			return fmt.Errorf("required list %s is empty", name)
		}
	}
	for i, entry := range l.Issues {
		if entry.Issue == "" || len(entry.Keywords) == 0 {
			return fmt.Errorf("issues[%d] is missing a label or keywords", i)
		}
	}
	for i, entry := range l.Emotions {
		if entry.Emotion == "" || len(entry.Synonyms) == 0 {
			return fmt.Errorf("emotions[%d] is missing a label or synonyms", i)
		}
	}
	for _, core := range l.CoreEmotions {
		if l.SynonymsFor(core) == nil {
			return fmt.Errorf("core emotion %q has no synonym entry", core)
		}
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded lexicon, loading it once. It panics on
// a malformed embed since that is a build defect, not a runtime state.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = Load()
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultLex
}
