package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/psychohealer/psychohealer/internal/model"
)

// Memory is the in-process Store. Per-user entry lists are guarded by a
// single RWMutex, which makes each append atomic; nothing is ever evicted.
type Memory struct {
	mu            sync.RWMutex
	conversations map[string][]model.Entry
	profiles      map[string]*model.Profile
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		conversations: make(map[string][]model.Entry),
		profiles:      make(map[string]*model.Profile),
	}
}

// Append records one exchange for a user.
func (s *Memory) Append(ctx context.Context, userID, message, response string, meta model.EntryMetadata) error {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		profile = &model.Profile{
			UserID:       userID,
			FirstSession: now,
		}
		s.profiles[userID] = profile
	}
	profile.TotalSessions++

	s.conversations[userID] = append(s.conversations[userID], model.Entry{
		ID:          uuid.Must(uuid.NewV7()).String(),
		UserID:      userID,
		Timestamp:   now,
		UserMessage: message,
		BotResponse: response,
		Metadata:    meta,
	})

	return nil
}

// History returns the last limit entries in chronological order.
func (s *Memory) History(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.conversations[userID]
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	out := make([]model.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// ContextSummary renders the narrative context block for a user.
func (s *Memory) ContextSummary(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return renderSummary(nil, nil), nil
	}

	entries := s.conversations[userID]
	if len(entries) > contextEntries {
		entries = entries[len(entries)-contextEntries:]
	}

	return renderSummary(profile, entries), nil
}

// UpdateProfile sets current issues and extends progress notes.
func (s *Memory) UpdateProfile(ctx context.Context, userID string, issues, notes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil
	}
	profile.CurrentIssues = issues
	profile.ProgressNotes = append(profile.ProgressNotes, notes...)
	return nil
}
