// Package models defines the core data structures for Sunshine.
//
// It includes the label types produced by the detectors, the chat API types,
// and the session state shared across modules.
package models

import (
	"errors"
	"strings"
	"time"
)

// CrisisType identifies the kind of crisis detected in a message.
type CrisisType string

const (
	// CrisisNone means no crisis phrasing was found.
	CrisisNone CrisisType = ""
	// CrisisSelfHarm covers suicide and self-harm phrasing.
	CrisisSelfHarm CrisisType = "self_harm"
	// CrisisViolentThoughts covers intent to harm others.
	CrisisViolentThoughts CrisisType = "violent_thoughts"
)

// AngerLevel grades the severity of violent-thought expressions.
type AngerLevel string

const (
	AngerCritical   AngerLevel = "critical"
	AngerVenting    AngerLevel = "venting"
	AngerProcessing AngerLevel = "processing"
)

// Issue is a broad life-concern topic used to pick a supportive response track.
type Issue string

const (
	IssueGeneral          Issue = "general"
	IssueDepression       Issue = "depression"
	IssueAnxiety          Issue = "anxiety"
	IssueSleep            Issue = "sleep"
	IssueTrauma           Issue = "trauma"
	IssueRelationship     Issue = "relationship"
	IssueLoneliness       Issue = "loneliness"
	IssueSelfEsteem       Issue = "self_esteem"
	IssueWorkStress       Issue = "work_stress"
	IssueCareerChange     Issue = "career_change"
	IssueWorkLifeBalance  Issue = "work_life_balance"
	IssueChildhoodTrauma  Issue = "childhood_trauma"
	IssueRelationshipLoss Issue = "relationship_loss"
	IssueIdentityStruggle Issue = "identity_struggle"
	IssueLifeTransition   Issue = "life_transition"
)

// DeepPersonal reports whether the issue gets the specialized deep-support
// response assembly instead of the standard sympathy/suggestion track.
func (i Issue) DeepPersonal() bool {
	switch i {
	case IssueChildhoodTrauma, IssueRelationshipLoss, IssueIdentityStruggle, IssueLifeTransition:
		return true
	default:
		return false
	}
}

// NeedsAffirmation reports whether the issue always closes with an
// affirmation, independent of the detected emotion.
func (i Issue) NeedsAffirmation() bool {
	switch i {
	case IssueDepression, IssueAnxiety, IssueTrauma:
		return true
	default:
		return false
	}
}

// ConversationType is a structural category of an utterance, independent of
// emotional content. ConversationNone means no type matched.
type ConversationType string

const (
	ConversationNone                 ConversationType = ""
	ConversationGreeting             ConversationType = "greeting"
	ConversationHowAreYou            ConversationType = "how_are_you"
	ConversationFeelingQuestion      ConversationType = "feeling_question"
	ConversationGratitude            ConversationType = "gratitude"
	ConversationAboutBot             ConversationType = "about_bot"
	ConversationHelpRequest          ConversationType = "help_request"
	ConversationProblemStatement     ConversationType = "problem_statement"
	ConversationPersonalExperience   ConversationType = "personal_experience"
	ConversationSeekingUnderstanding ConversationType = "seeking_understanding"
	ConversationDetailedReflection   ConversationType = "detailed_reflection"
	ConversationDeepFeelings         ConversationType = "deep_feelings"
	ConversationAgreement            ConversationType = "agreement"
	ConversationDisagreement         ConversationType = "disagreement"
	ConversationQuestion             ConversationType = "question"
	ConversationMoodStatement        ConversationType = "mood_statement"
)

// Deep reports whether this conversation type routes to the deep-sharing
// response path (specialized response plus style-matched follow-up).
func (c ConversationType) Deep() bool {
	switch c {
	case ConversationPersonalExperience, ConversationSeekingUnderstanding,
		ConversationDetailedReflection, ConversationDeepFeelings:
		return true
	default:
		return false
	}
}

// Emotion is a detected emotional label. The direct-emotion detector can also
// return special routing labels (EmotionCrisis, the heartbreak family, grief,
// burnout and the bad-day sub-categories) that the composer treats as branches
// rather than plain emotions. EmotionNone means nothing matched.
type Emotion string

const (
	EmotionNone      Emotion = ""
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAngry     Emotion = "angry"
	EmotionAnxious   Emotion = "anxious"
	EmotionNeutral   Emotion = "neutral"
	EmotionConfused  Emotion = "confused"
	EmotionHopeful   Emotion = "hopeful"
	EmotionTired     Emotion = "tired"
	EmotionGrateful  Emotion = "grateful"
	EmotionNumb      Emotion = "numb"
	EmotionWorthless Emotion = "worthless"
	EmotionLonely    Emotion = "lonely"
	EmotionSick      Emotion = "sick"

	// Special routing labels.
	EmotionGrief               Emotion = "grief"
	EmotionBurnout             Emotion = "burnout"
	EmotionRelationshipConcern Emotion = "relationship_concern"
	EmotionHeartbreak          Emotion = "heartbreak"
	EmotionBadDay              Emotion = "bad_day"
	EmotionFeelingInvisible    Emotion = "feeling_invisible"
	EmotionFeelingOverwhelmed  Emotion = "feeling_overwhelmed"
	EmotionSelfCriticism       Emotion = "self_criticism"
	EmotionMisunderstood       Emotion = "feeling_misunderstood"
	EmotionExhaustion          Emotion = "emotional_exhaustion"
	EmotionCrisis              Emotion = "crisis"
)

// Negative reports whether the emotion is one the composer treats as needing
// validation and coping support.
func (e Emotion) Negative() bool {
	switch e {
	case EmotionSad, EmotionAngry, EmotionAnxious, EmotionConfused, EmotionTired,
		EmotionNumb, EmotionWorthless, EmotionLonely, EmotionSick:
		return true
	default:
		return false
	}
}

// BadDayVariant reports whether the label is one of the bad-day sub-categories.
func (e Emotion) BadDayVariant() bool {
	switch e {
	case EmotionBadDay, EmotionFeelingInvisible, EmotionFeelingOverwhelmed,
		EmotionSelfCriticism, EmotionMisunderstood, EmotionExhaustion:
		return true
	default:
		return false
	}
}

// Style is the client's inferred communication style. It is recomputed every
// turn and never sticky.
type Style string

const (
	StyleFormal Style = "formal"
	StyleCasual Style = "casual"
	StyleGenZ   Style = "gen_z"
)

// RapportLevel is a coarse session-length-derived proxy for how warmed up the
// conversation is. Used only to gate follow-up questions.
type RapportLevel string

const (
	RapportInitial     RapportLevel = "initial"
	RapportBuilding    RapportLevel = "building"
	RapportEstablished RapportLevel = "established"
)

// Validation constants for chat input.
const (
	// MaxChatMessageLength bounds a single user turn.
	MaxChatMessageLength = 4096
	// MaxSessionIDLength bounds a client-supplied session id.
	MaxSessionIDLength = 64
)

// Error variables for better error handling and testability.
var (
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrMessageTooLong   = errors.New("message exceeds maximum length")
	ErrSessionIDTooLong = errors.New("session id exceeds maximum length")
	ErrSessionNotFound  = errors.New("session not found")
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// Validate performs input validation on a ChatRequest.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if len(r.Message) > MaxChatMessageLength {
		return ErrMessageTooLong
	}
	if len(r.SessionID) > MaxSessionIDLength {
		return ErrSessionIDTooLong
	}
	return nil
}

// ChatResponse is the reply payload for POST /api/chat.
type ChatResponse struct {
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one persisted transcript entry. Crisis marks user turns
// that tripped the crisis screen, feeding the stats counters.
type Message struct {
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Body      string    `json:"body"`
	Crisis    bool      `json:"crisis,omitempty"`
	Time      time.Time `json:"time"`
}

// SessionSummary is the read-only view returned by GET /api/sessions/{id}.
type SessionSummary struct {
	SessionID       string         `json:"session_id"`
	SessionLength   int            `json:"session_length"`
	RapportLevel    RapportLevel   `json:"rapport_level"`
	Style           Style          `json:"style"`
	LastEmotion     Emotion        `json:"last_emotion"`
	ClientName      string         `json:"client_name,omitempty"`
	CrisisDetected  bool           `json:"crisis_detected"`
	RecurringTopics map[string]int `json:"recurring_topics,omitempty"`
	FollowUpTopics  []string       `json:"follow_up_topics,omitempty"`
}

// Stats are aggregate counters returned by GET /api/stats.
type Stats struct {
	Sessions    int `json:"sessions"`
	Turns       int `json:"turns"`
	CrisisTurns int `json:"crisis_turns"`
}

// APIStatus represents the status of an API response.
type APIStatus string

const (
	// APIStatusOK indicates an API request completed successfully.
	APIStatusOK APIStatus = "ok"
	// APIStatusError indicates an API request failed with an error.
	APIStatusError APIStatus = "error"
)

// APIResponse is the uniform envelope for all API endpoints.
type APIResponse struct {
	Status  APIStatus   `json:"status"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

// Success creates a successful API response with a result payload.
func Success(result interface{}) APIResponse {
	return APIResponse{Status: APIStatusOK, Result: result}
}

// SuccessWithMessage creates a successful API response with a message and result.
func SuccessWithMessage(message string, result interface{}) APIResponse {
	return APIResponse{Status: APIStatusOK, Message: message, Result: result}
}

// Error creates an error API response with a message.
func Error(message string) APIResponse {
	return APIResponse{Status: APIStatusError, Message: message}
}
