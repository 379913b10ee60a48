package engine

import (
	"strings"

	"github.com/sunshine-labs/sunshine/internal/catalog"
	"github.com/sunshine-labs/sunshine/internal/models"
	"github.com/sunshine-labs/sunshine/internal/trained"
)

// compose walks the priority ladder and returns the styled reply. The
// order is fixed: self-harm, violent thoughts, emotion-pipeline
// crisis, hopelessness, trained overrides, stated emotions,
// conversational moves, life issues, and the reflective fallback. The
// first rung that produces text wins. Safety replies skip the style
// transforms so the support text goes out exactly as written.
func (e *Engine) compose(st *models.SessionState, a analysis) string {
	var reply string
	safety := false

	switch {
	case a.crisis == models.CrisisSelfHarm:
		reply = e.composeCrisis(st)
		safety = true
	case a.crisis == models.CrisisViolentThoughts:
		reply = e.composeViolent(st, a.anger)
		safety = true
	case a.emotion == models.EmotionCrisis:
		reply = e.composeCrisis(st)
		safety = true
	case a.hopeless:
		reply = e.composeHopeless(st)
		safety = true
	default:
		if pool, ok := e.lookupTrained(a); ok {
			reply = e.pick(st, "trained:"+trained.Normalize(a.message), pool)
		}
		if reply == "" {
			reply = e.composeEmotion(st, a)
		}
		if reply == "" {
			reply = e.composeConversation(st, a)
		}
		if reply == "" && a.issue != models.IssueGeneral {
			reply = e.composeIssue(st, a)
		}
		if reply == "" {
			reply = e.composeFallback(st)
		}
	}

	if safety {
		return reply
	}
	reply = e.styler.Apply(reply, st.Memory.Style, false)
	return e.styler.Personalize(reply, st.Memory.ClientName)
}

// pick selects from a pool with anti-repeat history under the given
// category key and records the choice.
func (e *Engine) pick(st *models.SessionState, category string, pool []string) string {
	choice := e.sel.Pick(pool, st.History.Recent(category))
	if choice != "" {
		st.History.Record(category, choice)
	}
	return choice
}

func (e *Engine) lookupTrained(a analysis) ([]string, bool) {
	if e.corpus == nil {
		return nil, false
	}
	return e.corpus.Lookup(a.message)
}

// composeCrisis builds the self-harm response: validation, support,
// and the hotline block, always in that order and never truncated.
func (e *Engine) composeCrisis(st *models.SessionState) string {
	parts := []string{
		e.pick(st, catalog.KeyValidation, e.cat.Pool(catalog.KeyValidation)),
		e.pick(st, catalog.KeyCrisisSupport, e.cat.Pool(catalog.KeyCrisisSupport)),
		e.cat.Pool(catalog.KeyCrisisResources)[0],
	}
	return joinParts(parts)
}

// composeViolent grades the reply by anger level. Critical also gets
// the hotline block since the client may be a danger to themselves.
func (e *Engine) composeViolent(st *models.SessionState, level models.AngerLevel) string {
	switch level {
	case models.AngerCritical:
		return joinParts([]string{
			e.pick(st, catalog.KeyViolentCritical, e.cat.Pool(catalog.KeyViolentCritical)),
			e.cat.Pool(catalog.KeyCrisisResources)[0],
		})
	case models.AngerVenting:
		return e.pick(st, catalog.KeyViolentVenting, e.cat.Pool(catalog.KeyViolentVenting))
	default:
		return e.pick(st, catalog.KeyViolentProcessing, e.cat.Pool(catalog.KeyViolentProcessing))
	}
}

// composeHopeless validates, affirms, and leaves the door open. It
// does not escalate to the hotline block; hopelessness without crisis
// phrasing gets an invitation to keep talking instead.
func (e *Engine) composeHopeless(st *models.SessionState) string {
	return joinParts([]string{
		e.pick(st, catalog.KeyHopelessnessSupport, e.cat.Pool(catalog.KeyHopelessnessSupport)),
		e.pick(st, catalog.KeyAffirmation, e.cat.Pool(catalog.KeyAffirmation)),
		e.pick(st, catalog.KeyShareInvitation, e.cat.Pool(catalog.KeyShareInvitation)),
	})
}

// composeConversation answers social moves. Deep disclosure types get
// an acknowledgment plus an exploration question; the lighter types
// are a single variant from their pool.
func (e *Engine) composeConversation(st *models.SessionState, a analysis) string {
	var key string
	light := false
	switch a.convType {
	case models.ConversationGreeting:
		reply := e.composeGreeting(st)
		if st.Memory.SessionLength > 2 {
			reply = joinParts([]string{reply, e.followUpQuestion(st)})
		}
		return reply
	case models.ConversationHowAreYou:
		key = catalog.KeyHowAreYou
		light = true
	case models.ConversationFeelingQuestion:
		key = catalog.KeyFeelingQuestion
		light = true
	case models.ConversationGratitude:
		key = catalog.KeyGratitude
	case models.ConversationAboutBot:
		key = catalog.KeyAboutBot
	case models.ConversationHelpRequest:
		key = catalog.KeyHelpRequest
	case models.ConversationProblemStatement:
		key = catalog.KeyProblemStatementAck
	case models.ConversationPersonalExperience:
		key = catalog.KeyPersonalExperience
	case models.ConversationSeekingUnderstanding:
		key = catalog.KeySeekingUnderstanding
	case models.ConversationDetailedReflection:
		key = catalog.KeyReflectionAck
	case models.ConversationDeepFeelings:
		key = catalog.KeyDeepFeelingsAck
	case models.ConversationAgreement:
		key = catalog.KeyAgreementFollowup
	case models.ConversationDisagreement:
		key = catalog.KeyDisagreementFollowup
	case models.ConversationQuestion:
		key = catalog.KeyShortQuestionReply
	case models.ConversationMoodStatement:
		key = catalog.KeyMoodFollowup
	default:
		return ""
	}

	reply := e.pick(st, key, e.cat.Pool(key))
	if a.convType.Deep() {
		reply = joinParts([]string{
			reply,
			e.pick(st, catalog.KeyExploration, e.cat.Pool(catalog.KeyExploration)),
		})
	}
	if light && st.Memory.SessionLength > 2 {
		reply = joinParts([]string{reply, e.followUpQuestion(st)})
	}
	return reply
}

// composeGreeting greets by name once the client has shared one and
// the conversation is under way, otherwise by style.
func (e *Engine) composeGreeting(st *models.SessionState) string {
	if st.Memory.ClientName != "" && st.Memory.SessionLength > 2 {
		raw := e.pick(st, catalog.KeyGreetingWithName, e.cat.Pool(catalog.KeyGreetingWithName))
		return strings.ReplaceAll(raw, "{name}", st.Memory.ClientName)
	}
	return e.pick(st, "greeting", e.cat.GreetingPool(st.Memory.Style))
}

// composeEmotion answers a stated or implied emotion. The special
// emotions route to their dedicated pools; core negative emotions get
// validation, sympathy, and a coping suggestion, positive ones just
// sympathy. The crisis variant is handled one level up with the other
// safety rungs.
func (e *Engine) composeEmotion(st *models.SessionState, a analysis) string {
	switch a.emotion {
	case models.EmotionNone, models.EmotionCrisis:
		return ""
	case models.EmotionHeartbreak:
		return e.pick(st, catalog.KeyHeartbreakSupport, e.cat.Pool(catalog.KeyHeartbreakSupport))
	case models.EmotionRelationshipConcern:
		return e.pick(st, catalog.KeyRelationshipConcern, e.cat.Pool(catalog.KeyRelationshipConcern))
	case models.EmotionGrief:
		reply := e.pick(st, catalog.KeyGriefSupport, e.cat.Pool(catalog.KeyGriefSupport))
		if e.rng.Float64() < explorationChance {
			reply = joinParts([]string{reply, e.pick(st, catalog.KeyGriefCoping, e.cat.Pool(catalog.KeyGriefCoping))})
		}
		return reply
	case models.EmotionBurnout:
		if a.meaning {
			return e.pick(st, catalog.KeyMeaningPurpose, e.cat.Pool(catalog.KeyMeaningPurpose))
		}
		return e.pick(st, catalog.KeyBurnoutSupport, e.cat.Pool(catalog.KeyBurnoutSupport))
	}

	if a.emotion.BadDayVariant() {
		return e.pick(st, "bad_day:"+string(a.emotion), e.cat.BadDayPool(a.emotion))
	}

	pool := e.cat.SympathyPool(a.emotion)
	if len(pool) == 0 {
		return ""
	}
	sympathy := e.pick(st, "sympathy:"+string(a.emotion), pool)
	if !a.emotion.Negative() {
		return sympathy
	}

	deep := st.Memory.RapportLevel == models.RapportEstablished
	validation := e.pick(st, catalog.KeyValidation, e.cat.ValidationPool(st.Memory.Style, deep))
	coping := e.pick(st, "coping:"+string(a.emotion), e.cat.CopingPool(a.emotion))
	reply := joinParts([]string{validation, sympathy, coping})
	if e.rng.Float64() < explorationChance {
		reply = joinParts([]string{reply, e.pick(st, catalog.KeyExploration, e.cat.Pool(catalog.KeyExploration))})
	}
	return reply
}

// composeIssue answers a detected life issue. Deep personal issues get
// the four-part deep assembly: deep validation, the issue response, a
// gentle suggestion, and the extended affirmation. The rest get
// sympathy when the message is heavy, a reflective paraphrase or the
// issue response, a coping suggestion, an affirmation when warranted,
// and a follow-up question.
func (e *Engine) composeIssue(st *models.SessionState, a analysis) string {
	if a.issue.DeepPersonal() {
		return joinParts([]string{
			e.pick(st, catalog.KeyValidationDeep, e.cat.ValidationPool(st.Memory.Style, true)),
			e.pick(st, "issue:"+string(a.issue), e.cat.IssuePool(a.issue)),
			e.pick(st, "suggestion:"+string(a.issue), e.cat.SuggestionPool(a.issue)),
			e.pick(st, catalog.KeyValidationExtended, e.cat.Pool(catalog.KeyValidationExtended)),
		})
	}

	long := len(strings.Fields(a.message)) > longMessageWords
	negative := a.emotion.Negative()

	var parts []string
	if long || negative {
		parts = append(parts, e.pick(st, catalog.KeyValidation, e.cat.ValidationPool(st.Memory.Style, false)))
	}
	if long {
		parts = append(parts, e.pick(st, catalog.KeyReflective, e.cat.Pool(catalog.KeyReflective)))
	} else {
		parts = append(parts, e.pick(st, "issue:"+string(a.issue), e.cat.IssuePool(a.issue)))
	}
	if e.rng.Float64() < generalSuggestionChance {
		parts = append(parts, e.pick(st, catalog.KeyGeneralSolutions, e.cat.Pool(catalog.KeyGeneralSolutions)))
	} else {
		parts = append(parts, e.pick(st, "suggestion:"+string(a.issue), e.cat.SuggestionPool(a.issue)))
	}
	if a.issue.NeedsAffirmation() || negative {
		parts = append(parts, e.pick(st, catalog.KeyAffirmation, e.cat.Pool(catalog.KeyAffirmation)))
	}
	parts = append(parts, e.followUpQuestion(st))
	return joinParts(parts)
}

// composeFallback keeps the conversation moving when nothing else
// applied: reflect and ask an open question in the client's style.
func (e *Engine) composeFallback(st *models.SessionState) string {
	return joinParts([]string{
		e.pick(st, catalog.KeyReflective, e.cat.Pool(catalog.KeyReflective)),
		e.followUpQuestion(st),
	})
}

// followUpQuestion closes a reply with an open question, occasionally
// circling back to a recurring topic once one has surfaced and the
// conversation is past its opening turns.
func (e *Engine) followUpQuestion(st *models.SessionState) string {
	if st.Memory.SessionLength > 3 && len(st.Memory.FollowUpTopics) > 0 && e.rng.Float64() < continueTopicChance {
		topic := st.Memory.FollowUpTopics[e.rng.IntN(len(st.Memory.FollowUpTopics))]
		raw := e.pick(st, catalog.KeyContinueTopic, e.cat.Pool(catalog.KeyContinueTopic))
		return strings.ReplaceAll(raw, "{topic}", topic)
	}
	return e.pick(st, "followup", e.cat.FollowupPool(st.Memory.Style))
}

// joinParts assembles non-empty parts into paragraphs.
func joinParts(parts []string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
