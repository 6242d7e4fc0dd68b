package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/psychohealer/psychohealer/internal/model"
	natsclient "github.com/psychohealer/psychohealer/internal/nats"
)

const (
	// streamName is the name of the conversations stream.
	streamName = "CONVERSATIONS"

	// subjectPrefix is the prefix for all conversation subjects.
	subjectPrefix = "conv"

	// profileBucket is the KV bucket holding user profiles.
	profileBucket = "PROFILES"

	// historyFetchCap bounds how many entries one history read pulls.
	historyFetchCap = 1000
)

// JetStream is the durable Store backend. Entries are stream messages on a
// per-user subject; profiles live in a key-value bucket. Appends from two
// processes for the same user can interleave; the design defines no
// cross-request consistency model.
type JetStream struct {
	client *natsclient.Client
}

// NewJetStream creates the durable store, provisioning the stream and the
// profile bucket if they do not exist.
func NewJetStream(ctx context.Context, client *natsclient.Client) (*JetStream, error) {
	js := client.JetStream()

	if _, err := js.Stream(ctx, streamName); err != nil {
		_, err = js.CreateStream(ctx, jetstream.StreamConfig{
			Name:        streamName,
			Subjects:    []string{fmt.Sprintf("%s.>", subjectPrefix)},
			Retention:   jetstream.LimitsPolicy,
			MaxAge:      365 * 24 * time.Hour,
			Storage:     jetstream.FileStorage,
			Replicas:    1,
			Compression: jetstream.S2Compression,
			DenyDelete:  true,
			DenyPurge:   true,
			Description: "Per-user conversation entries",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create stream: %w", err)
		}
	}

	if _, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      profileBucket,
		Description: "User profiles",
	}); err != nil && !errors.Is(err, jetstream.ErrBucketExists) {
		return nil, fmt.Errorf("failed to create profile bucket: %w", err)
	}

	return &JetStream{client: client}, nil
}

// entrySubject returns the subject for a user's entries. User identifiers
// are opaque caller-supplied strings, so they are hex-encoded before they
// reach the subject space: distinct ids can never share a subject, and the
// encoded token contains no NATS token-breaking characters.
func entrySubject(userID string) string {
	return fmt.Sprintf("%s.%s.entry", subjectPrefix, subjectToken(userID))
}

func subjectToken(s string) string {
	return hex.EncodeToString([]byte(s))
}

// Append records one exchange for a user.
func (s *JetStream) Append(ctx context.Context, userID, message, response string, meta model.EntryMetadata) error {
	now := time.Now()

	kv, err := s.client.JetStream().KeyValue(ctx, profileBucket)
	if err != nil {
		return fmt.Errorf("failed to open profile bucket: %w", err)
	}

	profile, err := s.loadProfile(ctx, kv, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		profile = &model.Profile{
			UserID:       userID,
			FirstSession: now,
		}
	}
	profile.TotalSessions++

	if err := s.putProfile(ctx, kv, profile); err != nil {
		return err
	}

	entry := model.Entry{
		ID:          uuid.Must(uuid.NewV7()).String(),
		UserID:      userID,
		Timestamp:   now,
		UserMessage: message,
		BotResponse: response,
		Metadata:    meta,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err := s.client.JetStream().Publish(ctx, entrySubject(userID), data); err != nil {
		return fmt.Errorf("failed to publish entry: %w", err)
	}
	return nil
}

// History returns the last limit entries in chronological order.
func (s *JetStream) History(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	entries, err := s.fetchEntries(ctx, userID, historyFetchCap)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// ContextSummary renders the narrative context block for a user.
func (s *JetStream) ContextSummary(ctx context.Context, userID string) (string, error) {
	kv, err := s.client.JetStream().KeyValue(ctx, profileBucket)
	if err != nil {
		return "", fmt.Errorf("failed to open profile bucket: %w", err)
	}

	profile, err := s.loadProfile(ctx, kv, userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return renderSummary(nil, nil), nil
	}

	entries, err := s.fetchEntries(ctx, userID, historyFetchCap)
	if err != nil {
		return "", err
	}
	if len(entries) > contextEntries {
		entries = entries[len(entries)-contextEntries:]
	}

	return renderSummary(profile, entries), nil
}

// UpdateProfile sets current issues and extends progress notes.
func (s *JetStream) UpdateProfile(ctx context.Context, userID string, issues, notes []string) error {
	kv, err := s.client.JetStream().KeyValue(ctx, profileBucket)
	if err != nil {
		return fmt.Errorf("failed to open profile bucket: %w", err)
	}

	profile, err := s.loadProfile(ctx, kv, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	profile.CurrentIssues = issues
	profile.ProgressNotes = append(profile.ProgressNotes, notes...)
	return s.putProfile(ctx, kv, profile)
}

func (s *JetStream) loadProfile(ctx context.Context, kv jetstream.KeyValue, userID string) (*model.Profile, error) {
	entry, err := kv.Get(ctx, subjectToken(userID))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile model.Profile
	if err := json.Unmarshal(entry.Value(), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *JetStream) putProfile(ctx context.Context, kv jetstream.KeyValue, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if _, err := kv.Put(ctx, subjectToken(profile.UserID), data); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	return nil
}

func (s *JetStream) fetchEntries(ctx context.Context, userID string, max int) ([]model.Entry, error) {
	js := s.client.JetStream()

	consumer, err := js.CreateConsumer(ctx, streamName, jetstream.ConsumerConfig{
		FilterSubject: entrySubject(userID),
		AckPolicy:     jetstream.AckNonePolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	batch, err := consumer.Fetch(max, jetstream.FetchMaxWait(2*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries: %w", err)
	}

	var entries []model.Entry
	for msg := range batch.Messages() {
		var entry model.Entry
		if err := json.Unmarshal(msg.Data(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if batch.Error() != nil && !errors.Is(batch.Error(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("batch error: %w", batch.Error())
	}

	return entries, nil
}
