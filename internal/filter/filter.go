// Package filter decides whether a query falls inside the assistant's
// psychology topic boundary. Classification is an ordered rule evaluation
// over keyword tiers and bypass-attempt patterns, not a statistical model.
package filter

import (
	"regexp"
	"strings"
)

// RefusalMessage is the fixed response for out-of-scope queries.
const RefusalMessage = `I'm PsychoHealer, a specialized psychology assistant. I only provide support for psychological and mental health concerns.

If you're experiencing psychological distress, anxiety, depression, relationship issues, stress, or any mental health challenges, I'm here to help with structured guidance and therapeutic approaches.

Please share your psychological concern, and I'll provide you with a comprehensive analysis and step-by-step treatment plan.

**If this is a mental health emergency, please contact:**
- National Suicide Prevention Lifeline: 988
- Crisis Text Line: Text HOME to 741741
- Emergency Services: 911`

// Result is the outcome of classifying one query.
type Result struct {
	InScope bool
	Reason  string
}

// shortQueryWords is the word-count cutoff below which a single moderate
// keyword is enough to classify a query as in scope.
const shortQueryWords = 5

var bypassPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ignore (all |any )?(previous |prior )?instructions`),
	regexp.MustCompile(`forget (everything|all|your (instructions|rules|role))`),
	regexp.MustCompile(`developer mode`),
	regexp.MustCompile(`jailbreak`),
	regexp.MustCompile(`pretend (you are|to be|you're)`),
	regexp.MustCompile(`roleplay as`),
	regexp.MustCompile(`you are now`),
	regexp.MustCompile(`new instructions\s*:`),
	regexp.MustCompile(`\[(system|admin|user|assistant)\]`),
}

var actAs = regexp.MustCompile(`\bact as\b`)

// therapeuticRole exempts "act as" phrasings that still ask for the
// assistant's declared role.
var therapeuticRole = regexp.MustCompile(`act as (a |an |my )?(therapist|psychologist|counselor|counsellor)`)

var strongKeywords = []string{
	"anxiety", "anxious", "depression", "depressed", "trauma", "ptsd",
	"panic", "phobia", "bipolar", "schizophrenia", "addiction",
	"suicide", "suicidal", "kill myself", "self-harm", "hurt myself",
	"end my life", "grief", "therapy", "therapist", "counseling",
	"ocd", "insomnia", "eating disorder", "mental health",
}

// Keyword lists avoid entries that are substrings of one another so that a
// single word never counts as two distinct matches.
var moderateKeywords = []string{
	"stress", "feeling", "mood", "emotion", "lonely", "sad", "angry",
	"anger", "fear", "worried", "worry", "overwhelmed", "relationship",
	"family", "confidence", "self-esteem", "sleep", "burnout", "cope",
	"coping", "struggling", "crying",
}

var offTopicKeywords = []string{
	"coding", "programming", "python", "javascript", "software",
	"recipe", "cooking", "baking", "travel", "vacation", "flight",
	"movie", "film", "video game", "gaming", "football", "basketball",
	"stock", "invest", "crypto", "shopping", "discount", "weather",
	"homework", "math", "physics", "essay", "lyrics",
}

var helpSeekingPhrases = []string{
	"help me with", "i am struggling", "i'm struggling", "i need help",
	"how do i cope", "what should i do",
}

// Classify determines whether a query is in scope. It is a pure function of
// the query text; rule order matters and first match wins.
func Classify(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))

	// Bypass attempts override every other signal.
	for _, p := range bypassPatterns {
		if p.MatchString(q) {
			return Result{InScope: false, Reason: "bypass attempt detected"}
		}
	}
	if actAs.MatchString(q) && !therapeuticRole.MatchString(q) {
		return Result{InScope: false, Reason: "bypass attempt detected"}
	}

	offTopic := countMatches(q, offTopicKeywords)
	strong := countMatches(q, strongKeywords)
	moderate := countMatches(q, moderateKeywords)

	switch {
	case offTopic >= 2:
		return Result{InScope: false, Reason: "off-topic query"}
	case strong >= 1:
		return Result{InScope: true, Reason: "clinical terms present"}
	case moderate >= 2:
		return Result{InScope: true, Reason: "emotional terms present"}
	case moderate >= 1 && len(strings.Fields(q)) <= shortQueryWords:
		return Result{InScope: true, Reason: "short emotional query"}
	}

	for _, phrase := range helpSeekingPhrases {
		if strings.Contains(q, phrase) {
			return Result{InScope: true, Reason: "help-seeking phrasing"}
		}
	}

	return Result{InScope: false, Reason: "no psychology signal"}
}

// countMatches counts distinct keywords present as substrings of q.
func countMatches(q string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(q, k) {
			n++
		}
	}
	return n
}
