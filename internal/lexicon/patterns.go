package lexicon

import (
	"regexp"

	"github.com/sunshine-labs/sunshine/internal/models"
)

// EmotionPattern pairs a compiled expression with the emotion it
// signals when the expression matches the lowercased message.
type EmotionPattern struct {
	Re      *regexp.Regexp
	Emotion models.Emotion
}

// Hi matches bare or lightly punctuated "hi"/"hii..." openers that the
// prefix list would otherwise miss.
var Hi = regexp.MustCompile(`^hi+$|^hi+[.!,\s]`)

// NeverPatterns catch future-tense hopelessness statements that the
// phrase list cannot, like "i'll never be happy".
var NeverPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i(?:'| wi)?ll never (?:be|get|find|have|feel)`),
	regexp.MustCompile(`never going to (?:be|get|find|have|feel)`),
	regexp.MustCompile(`(?:nothing|nobody|no one) (?:will|can) ever`),
	regexp.MustCompile(`(?:it|this|life) will never (?:change|improve|get better)`),
}

// NamePatterns extract a self-introduced first name. The single capture
// group is the candidate name; it still has to clear the stopword list.
var NamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bmy name is (\w+)`),
	regexp.MustCompile(`\bcall me (\w+)`),
	regexp.MustCompile(`^i'?m (\w+)[.!]?$`),
	regexp.MustCompile(`^i am (\w+)[.!]?$`),
	regexp.MustCompile(`^this is (\w+)[.!]?$`),
	regexp.MustCompile(`^it'?s (\w+)[.!]?$`),
}

// BadDayPatterns classify "bad day" messages into the sub-feeling that
/// picks the response pool. Order matters: the first match wins, and the
// generic day complaint comes last.
var BadDayPatterns = []EmotionPattern{
	{regexp.MustCompile(`(?:so|too) much (?:to do|going on|on my plate)|can'?t keep up|everything at once|drowning in`), models.EmotionFeelingOverwhelmed},
	{regexp.MustCompile(`(?:nobody|no one) (?:notice|see|care)s? (?:about )?me|feel (?:invisible|unseen|ignored)`), models.EmotionFeelingInvisible},
	{regexp.MustCompile(`(?:hate|disappointed in|mad at) myself|i (?:messed|screwed) (?:up|it up)|my fault|i'?m (?:such )?(?:a|an) (?:idiot|failure|mess)`), models.EmotionSelfCriticism},
	{regexp.MustCompile(`(?:nobody|no one) (?:get|understand)s? me|misunderstood|don'?t understand me`), models.EmotionMisunderstood},
	{regexp.MustCompile(`emotionally (?:drained|exhausted|spent)|no energy left|nothing left to give|running on empty`), models.EmotionExhaustion},
	{regexp.MustCompile(`(?:bad|rough|tough|awful|terrible|horrible|hard|worst) day|day (?:sucked|was awful|was terrible|from hell)`), models.EmotionBadDay},
}

// DirectPatterns capture a single feeling word from first-person
// statements. The captured word goes through the synonym lookup.
var DirectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bi feel (?:so |really |very |pretty |kinda |a bit |a little )?(\w+)`),
	regexp.MustCompile(`\bi'?m feeling (?:so |really |very |pretty |kinda |a bit |a little )?(\w+)`),
	regexp.MustCompile(`\bi am feeling (?:so |really |very |pretty |kinda |a bit |a little )?(\w+)`),
	regexp.MustCompile(`\bfeeling (?:so |really |very |pretty |kinda |a bit |a little )?(\w+)`),
	regexp.MustCompile(`\bi'?m (?:so |really |very |pretty |kinda )?(\w+)`),
	regexp.MustCompile(`\bi am (?:so |really |very |pretty |kinda )?(\w+)`),
}

// QuestionPatterns capture the feeling word from self-questioning
// forms like "am i depressed".
var QuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bam i (?:just )?(\w+)`),
	regexp.MustCompile(`\bdo you think i'?m (\w+)`),
	regexp.MustCompile(`\bdo you think i am (\w+)`),
	regexp.MustCompile(`\bcould i be (\w+)`),
}

// IndirectPatterns capture feeling words from indirect phrasings.
var IndirectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bmakes? me (?:feel )?(\w+)`),
	regexp.MustCompile(`\bi'?ve been (?:feeling )?(?:so |really |very )?(\w+)`),
	regexp.MustCompile(`\bbeen feeling (?:so |really |very )?(\w+)`),
	regexp.MustCompile(`\bleaves? me (?:feeling )?(\w+)`),
}

// RelationshipPatterns route partner and breakup messages to the
// relationship pools. Heartbreak entries come first so an explicit
// breakup is not diluted into generic relationship concern.
var RelationshipPatterns = []EmotionPattern{
	{regexp.MustCompile(`(?:broke up with|dumped|left) me|we broke up|(?:she|he|they) (?:left|ended it)`), models.EmotionHeartbreak},
	{regexp.MustCompile(`my heart is broken|broke my heart|heartbroken`), models.EmotionHeartbreak},
	{regexp.MustCompile(`i (?:still )?miss (?:him|her|them|my ex)`), models.EmotionHeartbreak},
	{regexp.MustCompile(`(?:my|our) relationship (?:is|has been|feels)|problems? with my (?:partner|boyfriend|girlfriend|spouse|wife|husband)`), models.EmotionRelationshipConcern},
	{regexp.MustCompile(`(?:partner|boyfriend|girlfriend|spouse|wife|husband) (?:and i|doesn'?t|won'?t|never|keeps?)`), models.EmotionRelationshipConcern},
	{regexp.MustCompile(`(?:trust|commitment) issues|(?:cheated|cheating) on me|being ghosted|ghosted me`), models.EmotionRelationshipConcern},
}

// GriefPatterns catch bereavement phrasings the synonym lookup misses.
var GriefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:passed away|died|lost) (?:my|our) (\w+)`),
	regexp.MustCompile(`\bi lost (?:him|her|them|someone)`),
	regexp.MustCompile(`(?:grieving|mourning) (?:for|over|the loss)`),
	regexp.MustCompile(`(?:my|our) (?:\w+ )?(?:passed away|is gone|died)`),
}

// MotivationPatterns catch burnout and lost-drive phrasings.
var MotivationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:no|lost (?:my|all)) motivation`),
	regexp.MustCompile(`can'?t (?:focus|concentrate|get anything done)`),
	regexp.MustCompile(`(?:burned|burnt) out|burning out`),
	regexp.MustCompile(`don'?t (?:feel like|want to) do(?:ing)? anything`),
	regexp.MustCompile(`everything (?:feels|is) (?:like )?a chore`),
}

// MeaningPatterns split purpose questions off from plain burnout so
// they land in the meaning and purpose pool.
var MeaningPatterns = []*regexp.Regexp{
	regexp.MustCompile(`what'?s the point of (?:it all|anything|working|trying)`),
	regexp.MustCompile(`(?:my (?:work|job|life) (?:feels|is)|everything feels) meaningless`),
	regexp.MustCompile(`no (?:meaning|purpose) (?:in|to) (?:my )?(?:life|work|anything)`),
	regexp.MustCompile(`why (?:do i|am i) even (?:bother|try)(?:ing)?`),
}

// CrisisPhrasePatterns back up the crisis keyword list with phrasings
// that vary too much for substring matching.
var CrisisPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:thinking|thought) about (?:ending|taking) (?:it all|my (?:own )?life)`),
	regexp.MustCompile(`(?:no|any) reason to (?:keep )?(?:go(?:ing)? on|living|wake up)`),
	regexp.MustCompile(`everyone would be (?:better|happier) (?:off )?without me`),
	regexp.MustCompile(`(?:want|wish) (?:to|i could) (?:just )?(?:disappear|not exist|stop existing)`),
}

// Style signals read off the raw (not lowercased) message.
var (
	MultiPunctuation    = regexp.MustCompile(`[!?]{2,}`)
	ShoutedWord         = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	Emoji               = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}]|[\x{2600}-\x{27BF}]`)
	DroppedApostrophe   = regexp.MustCompile(`\b(?:im|dont|cant|wont|didnt|doesnt|isnt|youre|theyre|whats|thats|ive|ill|id)\b`)
	SentenceInitialWord = regexp.MustCompile(`(?:^|[.!?]\s+)([A-Za-z])`)
)
