// Package store persists per-user conversation logs and profiles.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/psychohealer/psychohealer/internal/model"
)

// contextEntries is how many recent exchanges feed the context summary.
const contextEntries = 3

// contextMessageBudget caps each summarized user message.
const contextMessageBudget = 100

// Store is the conversation persistence capability, injected into the
// pipeline. History for a given user is append-only and never reordered.
type Store interface {
	// Append records one exchange, creating the user's profile on first
	// call and incrementing the session count.
	Append(ctx context.Context, userID, message, response string, meta model.EntryMetadata) error

	// History returns the last limit entries in original chronological order.
	History(ctx context.Context, userID string, limit int) ([]model.Entry, error)

	// ContextSummary renders profile counters plus recent exchanges into a
	// narrative block consumed by the response generator.
	ContextSummary(ctx context.Context, userID string) (string, error)

	// UpdateProfile sets the user's current issues and extends the
	// append-only progress notes.
	UpdateProfile(ctx context.Context, userID string, issues, notes []string) error
}

// renderSummary formats the PATIENT CONTEXT block shared by all Store
// implementations. entries must already be the most recent exchanges in
// chronological order.
func renderSummary(profile *model.Profile, entries []model.Entry) string {
	if profile == nil {
		return "New user - no previous history."
	}

	issues := "None documented"
	if len(profile.CurrentIssues) > 0 {
		issues = strings.Join(profile.CurrentIssues, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PATIENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Total sessions: %d\n", profile.TotalSessions)
	fmt.Fprintf(&b, "- First session: %s\n", profile.FirstSession.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Current issues: %s\n", issues)
	fmt.Fprintf(&b, "\nRECENT CONVERSATION SUMMARY:\n")

	for i, e := range entries {
		msg := e.UserMessage
		if r := []rune(msg); len(r) > contextMessageBudget {
			msg = string(r[:contextMessageBudget])
		}
		fmt.Fprintf(&b, "Session %d: User discussed - %s...\n", i+1, msg)
	}

	return b.String()
}
