// Package engine composes replies from the analysis passes, the
// response catalog, and session memory.
//
// Each turn runs the detectors over the incoming message, updates the
// session's conversational memory, and walks a strict priority ladder:
// safety concerns first, then curated overrides, social moves, stated
// emotions, life issues, and finally reflective fallbacks. Styling and
// personalization happen last so every path gets them.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sunshine-labs/sunshine/internal/catalog"
	"github.com/sunshine-labs/sunshine/internal/detect"
	"github.com/sunshine-labs/sunshine/internal/lexicon"
	"github.com/sunshine-labs/sunshine/internal/models"
	"github.com/sunshine-labs/sunshine/internal/selector"
	"github.com/sunshine-labs/sunshine/internal/session"
	"github.com/sunshine-labs/sunshine/internal/tone"
	"github.com/sunshine-labs/sunshine/internal/trained"
)

// Chance constants for the composer's optional touches.
const (
	continueTopicChance     = 0.30
	generalSuggestionChance = 0.70
	explorationChance       = 0.30
)

// longMessageWords is the word count past which a message gets the
// reflective treatment instead of the short issue response.
const longMessageWords = 15

// Opts holds engine configuration.
type Opts struct {
	Lexicon *lexicon.Lexicon
	Catalog *catalog.Catalog
	Corpus  *trained.Corpus
	Rand    *rand.Rand
}

// Option defines a configuration option for the engine.
type Option func(*Opts)

// WithLexicon overrides the embedded lexicon.
func WithLexicon(l *lexicon.Lexicon) Option {
	return func(o *Opts) { o.Lexicon = l }
}

// WithCatalog overrides the embedded response catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *Opts) { o.Catalog = c }
}

// WithCorpus installs a trained-response corpus.
func WithCorpus(c *trained.Corpus) Option {
	return func(o *Opts) { o.Corpus = c }
}

// WithRand pins the random source, used by tests.
func WithRand(rng *rand.Rand) Option {
	return func(o *Opts) { o.Rand = rng }
}

// Engine executes conversation turns.
type Engine struct {
	sessions *session.Manager
	det      *detect.Detector
	cat      *catalog.Catalog
	sel      *selector.Selector
	styler   *tone.Styler
	corpus   *trained.Corpus
	rng      *rand.Rand
}

// New creates an engine over the session manager. Without options it
// uses the embedded lexicon and catalog, no trained corpus, and a
// seeded random source.
func New(sessions *session.Manager, opts ...Option) *Engine {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		sessions: sessions,
		det:      detect.New(cfg.Lexicon),
		cat:      cfg.Catalog,
		sel:      selector.New(selector.WithRand(cfg.Rand)),
		styler:   tone.New(tone.WithRand(cfg.Rand)),
		corpus:   cfg.Corpus,
		rng:      cfg.Rand,
	}
}

// analysis bundles one turn's detector results.
type analysis struct {
	message  string
	crisis   models.CrisisType
	anger    models.AngerLevel
	hopeless bool
	issue    models.Issue
	convType models.ConversationType
	emotion  models.Emotion
	meaning  bool
	style    models.Style
	name     string
	topics   []string
}

func (e *Engine) analyze(message string) analysis {
	a := analysis{
		message:  message,
		crisis:   e.det.Crisis(message),
		hopeless: e.det.Hopeless(message),
		issue:    e.det.Issue(message),
		convType: e.det.ConversationType(message),
		emotion:  e.det.DirectEmotion(message),
		style:    e.det.Style(message),
		name:     e.det.Name(message),
		topics:   e.det.Topics(message),
	}
	if a.crisis == models.CrisisViolentThoughts {
		a.anger = e.det.AngerLevel(message)
	}
	if a.emotion == models.EmotionBurnout {
		a.meaning = e.det.Meaning(message)
	}
	return a
}

// ProcessTurn runs one conversation turn. An empty session id starts a
// new session. The reply and the user message are appended to the
// transcript; transcript failures are logged but do not fail the turn.
func (e *Engine) ProcessTurn(sessionID, message string) (models.ChatResponse, error) {
	if sessionID == "" {
		sessionID = e.sessions.NewID()
	}

	a := e.analyze(message)
	slog.Debug("Engine.ProcessTurn: analysis complete",
		"session_id", sessionID,
		"crisis", a.crisis,
		"hopeless", a.hopeless,
		"issue", a.issue,
		"conversation_type", a.convType,
		"emotion", a.emotion,
		"style", a.style,
	)

	var reply string
	state, err := e.sessions.Update(sessionID, func(st *models.SessionState) error {
		e.updateMemory(st, a)
		reply = e.compose(st, a)
		if reply == "" {
			return fmt.Errorf("composer produced no reply for session %s", sessionID)
		}
		return nil
	})
	if err != nil {
		return models.ChatResponse{}, err
	}

	now := time.Now()
	userMsg := models.Message{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Body:      message,
		Crisis:    a.crisis != models.CrisisNone,
		Time:      now,
	}
	if err := e.sessions.AddMessage(userMsg); err != nil {
		slog.Warn("Engine.ProcessTurn: failed to persist user message", "error", err, "session_id", sessionID)
	}
	botMsg := models.Message{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Body:      reply,
		Time:      now,
	}
	if err := e.sessions.AddMessage(botMsg); err != nil {
		slog.Warn("Engine.ProcessTurn: failed to persist reply", "error", err, "session_id", sessionID)
	}

	return models.ChatResponse{
		SessionID: state.ID,
		Message:   reply,
		Timestamp: now,
	}, nil
}

// updateMemory folds the turn's analysis into the session memory
// before composition so rapport and style influence this very reply.
func (e *Engine) updateMemory(st *models.SessionState, a analysis) {
	m := &st.Memory
	m.SessionLength++
	m.RefreshRapport()
	m.Style = a.style
	if a.name != "" && m.ClientName == "" {
		m.ClientName = a.name
	}
	for _, topic := range a.topics {
		m.RecordTopic(topic)
	}
	if a.crisis != models.CrisisNone {
		m.CrisisDetected = true
	}
	if a.emotion != models.EmotionNone {
		m.LastEmotion = a.emotion
	}
	if a.issue != models.IssueGeneral {
		if n := len(m.PreviousIssues); n == 0 || m.PreviousIssues[n-1] != a.issue {
			m.PreviousIssues = append(m.PreviousIssues, a.issue)
		}
	}
}
