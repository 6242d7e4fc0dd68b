// Package model defines data structures for the psychology assistant.
package model

import (
	"time"
)

// EntryMetadata records how a conversation entry was produced.
type EntryMetadata struct {
	ModelUsed         string `json:"model_used"`
	VideosRecommended int    `json:"videos_recommended"`
}

// Entry is a single exchange in a user's conversation log.
// Entries are immutable once created and appended in chronological order.
type Entry struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Timestamp   time.Time     `json:"timestamp"`
	UserMessage string        `json:"user_message"`
	BotResponse string        `json:"bot_response"`
	Metadata    EntryMetadata `json:"metadata"`
}

// Profile holds per-user session counters and clinical notes.
// One profile per user identifier, created lazily on first message.
type Profile struct {
	UserID        string    `json:"user_id"`
	FirstSession  time.Time `json:"first_session"`
	TotalSessions int       `json:"total_sessions"`
	CurrentIssues []string  `json:"current_issues"`
	ProgressNotes []string  `json:"progress_notes"`
}
