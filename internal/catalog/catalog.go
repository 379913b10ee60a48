// Package catalog holds the response pools the engine draws from.
//
// Pools are keyed flat lists in an embedded JSON file. Keys used by the
// engine are declared as constants here so a typo fails validation at
// startup rather than producing an empty reply at runtime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sunshine-labs/sunshine/internal/models"
)

//go:embed data/responses.json
var responsesJSON []byte

// Pool keys referenced from the engine.
const (
	KeyGreetingFormal   = "greeting_formal"
	KeyGreetingCasual   = "greeting_casual"
	KeyGreetingGenZ     = "greeting_gen_z"
	KeyGreetingWithName = "greeting_with_name"

	KeyHowAreYou            = "how_are_you"
	KeyFeelingQuestion      = "feeling_question"
	KeyGratitude            = "gratitude"
	KeyAboutBot             = "about_bot"
	KeyHelpRequest          = "help_request"
	KeyProblemStatementAck  = "problem_statement_ack"
	KeyPersonalExperience   = "personal_experience_ack"
	KeySeekingUnderstanding = "seeking_understanding_ack"
	KeyReflectionAck        = "reflection_ack"
	KeyDeepFeelingsAck      = "deep_feelings_ack"
	KeyAgreementFollowup    = "agreement_followup"
	KeyDisagreementFollowup = "disagreement_followup"
	KeyShortQuestionReply   = "short_question_reply"
	KeyMoodFollowup         = "mood_followup"

	KeyValidation         = "validation"
	KeyValidationDeep     = "validation_deep"
	KeyValidationExtended = "validation_extended"
	KeyValidationGenZ     = "validation_gen_z"
	KeyAffirmation        = "affirmation"
	KeyExploration        = "exploration_questions"

	KeyCrisisSupport       = "crisis_support"
	KeyHopelessnessSupport = "hopelessness_support"
	KeyShareInvitation     = "share_invitation"
	KeyViolentCritical     = "violent_critical"
	KeyViolentVenting      = "violent_venting"
	KeyViolentProcessing   = "violent_processing"
	KeyCrisisResources     = "crisis_resources"

	KeyHeartbreakSupport    = "heartbreak_support"
	KeyRelationshipConcern  = "relationship_concern_support"
	KeyGriefSupport         = "grief_support"
	KeyGriefCoping          = "grief_coping"
	KeyBurnoutSupport       = "burnout_support"
	KeyMeaningPurpose       = "meaning_purpose"

	KeyReflective       = "reflective"
	KeyContinueTopic    = "continue_topic"
	KeyGeneralSolutions = "general_solutions"
)

// Catalog gives keyed access to the response pools.
type Catalog struct {
	pools map[string][]string
}

// requiredKeys must be present and non-empty or the catalog refuses to
// load. The crisis set is here because a missing crisis pool is a
// safety defect, not a degraded experience.
var requiredKeys = []string{
	KeyGreetingFormal, KeyGreetingCasual, KeyGreetingGenZ, KeyGreetingWithName,
	KeyValidation, KeyAffirmation, KeyExploration,
	KeyCrisisSupport, KeyHopelessnessSupport, KeyShareInvitation, KeyCrisisResources,
	KeyViolentCritical, KeyViolentVenting, KeyViolentProcessing,
	KeyReflective, KeyContinueTopic, KeyGeneralSolutions,
	"issue_general",
}

// Load parses and validates the embedded pools.
func Load() (*Catalog, error) {
	var pools map[string][]string
	if err := json.Unmarshal(responsesJSON, &pools); err != nil {
		return nil, fmt.Errorf("catalog.Load: parse embedded responses: %w", err)
	}
	c := &Catalog{pools: pools}
	for _, key := range requiredKeys {
		if len(c.pools[key]) == 0 {
			return nil, fmt.Errorf("catalog.Load: required pool %q is missing or empty", key)
		}
	}
	for key, pool := range pools {
		for i, v := range pool {
			if v == "" {
				return nil, fmt.Errorf("catalog.Load: pool %q has an empty variant at index %d", key, i)
			}
		}
	}
	return c, nil
}

// Pool returns the variants under key, or nil when the catalog has no
// such pool. Callers that can degrade should fall back to another key.
func (c *Catalog) Pool(key string) []string {
	return c.pools[key]
}

// Has reports whether a non-empty pool exists under key.
func (c *Catalog) Has(key string) bool {
	return len(c.pools[key]) > 0
}

// IssuePool returns the discussion pool for an issue, falling back to
// the general pool for issues without a dedicated one.
func (c *Catalog) IssuePool(issue models.Issue) []string {
	if pool := c.pools["issue_"+string(issue)]; len(pool) > 0 {
		return pool
	}
	return c.pools["issue_general"]
}

// SympathyPool returns the empathy pool for an emotion, or nil when
// the emotion has no dedicated pool.
func (c *Catalog) SympathyPool(emotion models.Emotion) []string {
	return c.pools["sympathy_"+string(emotion)]
}

// SuggestionPool returns the coping-suggestion pool for an issue,
// falling back to the general suggestions.
func (c *Catalog) SuggestionPool(issue models.Issue) []string {
	if pool := c.pools["suggestion_"+string(issue)]; len(pool) > 0 {
		return pool
	}
	return c.pools["suggestion_general"]
}

// CopingPool returns the coping suggestions for an emotion, falling
// back to the general solutions for emotions without a dedicated pool.
func (c *Catalog) CopingPool(emotion models.Emotion) []string {
	if pool := c.pools["coping_"+string(emotion)]; len(pool) > 0 {
		return pool
	}
	return c.pools[KeyGeneralSolutions]
}

// BadDayPool returns the pool for a bad-day sub-feeling, falling back
// to the general bad-day pool for the plain variant.
func (c *Catalog) BadDayPool(emotion models.Emotion) []string {
	switch emotion {
	case models.EmotionFeelingOverwhelmed:
		return c.pools["bad_day_overwhelmed"]
	case models.EmotionFeelingInvisible:
		return c.pools["bad_day_invisible"]
	case models.EmotionSelfCriticism:
		return c.pools["bad_day_self_criticism"]
	case models.EmotionMisunderstood:
		return c.pools["bad_day_misunderstood"]
	case models.EmotionExhaustion:
		return c.pools["bad_day_exhaustion"]
	default:
		return c.pools["bad_day_general"]
	}
}

// GreetingPool returns the greeting variants for a client style.
func (c *Catalog) GreetingPool(style models.Style) []string {
	switch style {
	case models.StyleGenZ:
		return c.pools[KeyGreetingGenZ]
	case models.StyleCasual:
		return c.pools[KeyGreetingCasual]
	default:
		return c.pools[KeyGreetingFormal]
	}
}

// FollowupPool returns the open-question followups for a client style.
func (c *Catalog) FollowupPool(style models.Style) []string {
	switch style {
	case models.StyleGenZ:
		return c.pools["followup_gen_z"]
	case models.StyleCasual:
		return c.pools["followup_casual"]
	default:
		return c.pools["followup_formal"]
	}
}

// ValidationPool returns the validation pool matching style and depth.
func (c *Catalog) ValidationPool(style models.Style, deep bool) []string {
	if style == models.StyleGenZ {
		if pool := c.pools[KeyValidationGenZ]; len(pool) > 0 {
			return pool
		}
	}
	if deep {
		if pool := c.pools[KeyValidationDeep]; len(pool) > 0 {
			return pool
		}
	}
	return c.pools[KeyValidation]
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, loading it once. It panics on
// a malformed embed since that is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load()
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultCat
}
