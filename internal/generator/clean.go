package generator

import (
	"regexp"
	"strings"
)

// Known reasoning-leakage markers. Cleaning is best-effort and pattern
// based: it removes text matching this list, nothing more. The contract is
// the pattern list, not a guarantee that no meta-commentary ever leaks.
var leakPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)\[REASONING:.*?\]`),
	regexp.MustCompile(`(?is)\[MODEL SELECTION:.*?\]`),
	regexp.MustCompile(`(?is)<thinking>.*?</thinking>`),
	regexp.MustCompile(`(?is)<analysis>.*?</analysis>`),
	regexp.MustCompile(`(?im)^let me think[^\n]*\n?`),
	regexp.MustCompile(`(?im)^first, i[^\n]*\n?`),
	regexp.MustCompile(`(?im)^based on my analysis[^\n]*\n?`),
	regexp.MustCompile(`(?im)^i need to consider[^\n]*\n?`),
	regexp.MustCompile(`(?im)^my reasoning is[^\n]*\n?`),
}

var blankRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)

// Clean strips known reasoning-leakage artifacts from a completion and
// collapses runs of three or more newlines down to exactly two. Applying
// Clean to already-cleaned text returns it unchanged.
func Clean(text string) string {
	for _, p := range leakPatterns {
		text = p.ReplaceAllString(text, "")
	}
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
