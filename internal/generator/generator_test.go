package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychohealer/psychohealer/internal/llm"
	"github.com/psychohealer/psychohealer/pkg/logger"
)

type fakeClient struct {
	response string
	err      error
	lastReq  *llm.CompletionRequest
}

func (f *fakeClient) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.response, Model: req.Model}, nil
}

func (f *fakeClient) Name() string { return "fake" }

func newTestGenerator(client llm.Client) (*Generator, *llm.Registry) {
	registry := llm.NewRegistry()
	registry.Register(llm.Backend{ID: "llama", Model: "llama-3.3-70b-versatile", Client: client})
	registry.Register(llm.Backend{ID: "deepseek", Model: "deepseek-r1-distill-llama-70b", Client: nil})
	return New(registry, 1500, 0.5, logger.NewNop()), registry
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	client := &fakeClient{response: "[REASONING: severity check]\nYou are carrying a lot right now."}
	g, _ := newTestGenerator(client)

	got, err := g.Generate(context.Background(), "I feel anxious", "New user - no previous history.", "llama")
	require.NoError(t, err)
	assert.Equal(t, "You are carrying a lot right now.", got)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "llama-3.3-70b-versatile", client.lastReq.Model)
	assert.Equal(t, 1500, client.lastReq.MaxTokens)
	assert.InDelta(t, 0.5, client.lastReq.Temperature, 0.0001)
	require.Len(t, client.lastReq.Messages, 1)
	assert.Equal(t, "system", client.lastReq.Messages[0].Role)
	assert.Contains(t, client.lastReq.Messages[0].Content, "CONTEXT: New user - no previous history.")
	assert.Contains(t, client.lastReq.Messages[0].Content, "QUERY: I feel anxious")
}

func TestGenerateUnknownBackend(t *testing.T) {
	t.Parallel()

	g, _ := newTestGenerator(&fakeClient{response: "ok"})

	_, err := g.Generate(context.Background(), "query", "", "gemini")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestGenerateUnconfiguredBackend(t *testing.T) {
	t.Parallel()

	g, _ := newTestGenerator(&fakeClient{response: "ok"})

	// Registered id with a nil client behaves like an unavailable backend.
	_, err := g.Generate(context.Background(), "query", "", "deepseek")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestGenerateBackendFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("rate limited")
	g, _ := newTestGenerator(&fakeClient{err: cause})

	_, err := g.Generate(context.Background(), "query", "", "llama")

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "llama", backendErr.Backend)
	assert.ErrorIs(t, err, cause)
}

func TestBackends(t *testing.T) {
	t.Parallel()

	g, _ := newTestGenerator(&fakeClient{})
	assert.Equal(t, []string{"llama", "deepseek"}, g.Backends())
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("I can't sleep", "PATIENT CONTEXT:\n- trouble sleeping")
	assert.Contains(t, prompt, "You are PsychoHealer")
	assert.Contains(t, prompt, "CONTEXT: PATIENT CONTEXT:\n- trouble sleeping")
	assert.Contains(t, prompt, "QUERY: I can't sleep")
	assert.Contains(t, prompt, "Provide structured psychological response.")
}
