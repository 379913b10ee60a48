package detect

import (
	"testing"

	"github.com/sunshine-labs/sunshine/internal/models"
)

func TestCrisisSelfHarmBeforeViolent(t *testing.T) {
	d := New(nil)
	cases := map[string]models.CrisisType{
		"i want to kill myself":                        models.CrisisSelfHarm,
		"sometimes i just want to disappear forever":   models.CrisisSelfHarm,
		"i'm going to kill them for what they did":     models.CrisisViolentThoughts,
		"i want to end my life and i want to kill him": models.CrisisSelfHarm,
		"i had a nice walk today":                      models.CrisisNone,
		"": models.CrisisNone,
	}
	for msg, want := range cases {
		if got := d.Crisis(msg); got != want {
			t.Errorf("Crisis(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestCrisisDeterministic(t *testing.T) {
	d := New(nil)
	msg := "i don't want to be here anymore"
	first := d.Crisis(msg)
	for i := 0; i < 10; i++ {
		if got := d.Crisis(msg); got != first {
			t.Fatalf("Crisis is not deterministic: %q then %q", first, got)
		}
	}
}

func TestAngerLevel(t *testing.T) {
	d := New(nil)
	cases := map[string]models.AngerLevel{
		"i'm going to kill him tonight, i have a knife":      models.AngerCritical,
		"tonight i will make them pay":                       models.AngerCritical,
		"i'm so angry, i'm sick of how they treat me":        models.AngerVenting,
		"i keep having these thoughts about hurting someone": models.AngerProcessing,
	}
	for msg, want := range cases {
		if got := d.AngerLevel(msg); got != want {
			t.Errorf("AngerLevel(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestHopeless(t *testing.T) {
	d := New(nil)
	for _, msg := range []string{
		"what's the use, nothing helps",
		"i'll never be happy again",
		"there's no way out of this",
	} {
		if !d.Hopeless(msg) {
			t.Errorf("Hopeless(%q) = false, want true", msg)
		}
	}
	if d.Hopeless("today was actually pretty decent") {
		t.Error("Hopeless should not fire on a positive message")
	}
}

func TestIssuePrecedence(t *testing.T) {
	d := New(nil)
	cases := map[string]models.Issue{
		"my childhood was full of abuse and pain":              models.IssueChildhoodTrauma,
		"growing up was fun, we had a big garden":              models.IssueGeneral,
		"my boyfriend broke up with me and i'm so sad":         models.IssueRelationshipLoss,
		"i don't know who am i anymore":                        models.IssueIdentityStruggle,
		"my job is stressful and my boss is awful":             models.IssueWorkStress,
		"i've been thinking about a career change":             models.IssueCareerChange,
		"i'm always working, no time for myself":               models.IssueWorkLifeBalance,
		"i feel so empty and hopeless lately":                  models.IssueDepression,
		"i can't stop the worry and panic":                     models.IssueAnxiety,
		"i have insomnia and nightmares":                       models.IssueSleep,
		"i feel so alone and nobody cares about me":            models.IssueLoneliness,
		"i'm such a failure, not good enough for anything":     models.IssueSelfEsteem,
		"the weather has been strange lately":                  models.IssueGeneral,
		"": models.IssueGeneral,
	}
	for msg, want := range cases {
		if got := d.Issue(msg); got != want {
			t.Errorf("Issue(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestConversationType(t *testing.T) {
	d := New(nil)
	cases := map[string]models.ConversationType{
		"hi":                              models.ConversationGreeting,
		"hiii!":                           models.ConversationGreeting,
		"hey, rough week":                 models.ConversationGreeting,
		"how are you doing today?":        models.ConversationHowAreYou,
		"are you okay?":                   models.ConversationFeelingQuestion,
		"thank you so much":               models.ConversationGratitude,
		"are you a bot?":                  models.ConversationAboutBot,
		"i need help with something":      models.ConversationHelpRequest,
		"i have a problem at home":        models.ConversationProblemStatement,
		"let me tell you what happened":   models.ConversationPersonalExperience,
		"does that make sense?":           models.ConversationSeekingUnderstanding,
		"i've been thinking a lot":        models.ConversationDetailedReflection,
		"it hurts so much i can't breathe":      models.ConversationDeepFeelings,
		"yes":       models.ConversationAgreement,
		"nah":       models.ConversationDisagreement,
		"why":       models.ConversationQuestion,
		"tired":     models.ConversationMoodStatement,
		"yes it got much worse after that conversation": models.ConversationNone,
		"": models.ConversationNone,
	}
	for msg, want := range cases {
		if got := d.ConversationType(msg); got != want {
			t.Errorf("ConversationType(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestDirectEmotion(t *testing.T) {
	d := New(nil)
	cases := map[string]models.Emotion{
		"i feel sad today":                      models.EmotionSad,
		"i'm so anxious about tomorrow":         models.EmotionAnxious,
		"i am feeling really tired":             models.EmotionTired,
		"am i depressed?":                       models.EmotionSad,
		"this whole thing makes me angry":       models.EmotionAngry,
		"i've been feeling lonely":              models.EmotionSad,
		"she broke up with me last week":        models.EmotionHeartbreak,
		"my grandmother passed away":            models.EmotionGrief,
		"i have no motivation anymore":          models.EmotionBurnout,
		"what's the point of working so hard":   models.EmotionBurnout,
		"i had such a bad day":                  models.EmotionBadDay,
		"so much to do, i can't keep up at all": models.EmotionFeelingOverwhelmed,
		"nobody notices me at all":              models.EmotionFeelingInvisible,
		"i hate myself for messing that up":     models.EmotionSelfCriticism,
		"the bus was late":                      models.EmotionNone,
	}
	for msg, want := range cases {
		if got := d.DirectEmotion(msg); got != want {
			t.Errorf("DirectEmotion(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestDirectEmotionNegation(t *testing.T) {
	d := New(nil)
	if got := d.DirectEmotion("i'm not feeling good today"); got != models.EmotionSad {
		t.Errorf("negated wellness should read as sad, got %q", got)
	}
	if got := d.DirectEmotion("i'm not sad anymore"); got == models.EmotionSad {
		t.Error("negated sadness should not read as sad")
	}
}

func TestEmotionsMultiExtract(t *testing.T) {
	d := New(nil)
	got := d.Emotions("i'm happy about the job but anxious about the move")
	want := []models.Emotion{models.EmotionHappy, models.EmotionAnxious}
	if len(got) != len(want) {
		t.Fatalf("Emotions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Emotions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := d.Emotions("the train arrives at nine"); got != nil {
		t.Errorf("expected no emotions, got %v", got)
	}
}

func TestStyle(t *testing.T) {
	d := New(nil)
	cases := map[string]models.Style{
		"Hello. I would like to discuss something that has been troubling me. However, I am unsure where to begin.": models.StyleFormal,
		"hey yeah i dunno, it's been kinda rough lol":     models.StyleCasual,
		"ngl bestie this week has been a whole mood fr fr": models.StyleGenZ,
		"ok":                                              models.StyleFormal,
	}
	for msg, want := range cases {
		if got := d.Style(msg); got != want {
			t.Errorf("Style(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestName(t *testing.T) {
	d := New(nil)
	cases := map[string]string{
		"my name is jordan":   "Jordan",
		"call me sam":         "Sam",
		"i'm alex":            "Alex",
		"i'm tired":           "",
		"i'm really anxious":  "",
		"what a day it's been": "",
	}
	for msg, want := range cases {
		if got := d.Name(msg); got != want {
			t.Errorf("Name(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestTopics(t *testing.T) {
	d := New(nil)
	got := d.Topics("my boss is awful and my dog won't eat")
	want := []string{"work", "pet"}
	if len(got) != len(want) {
		t.Fatalf("Topics() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
