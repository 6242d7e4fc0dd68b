// Package generator dispatches assembled prompts to the selected LLM
// backend and post-processes the completion.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/llm"
	"github.com/psychohealer/psychohealer/pkg/logger"
	"github.com/psychohealer/psychohealer/pkg/metrics"
)

// ErrBackendUnavailable reports a backend with no configured credentials or
// an identifier the registry does not know.
var ErrBackendUnavailable = errors.New("backend not available")

// BackendError wraps a downstream completion failure.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Generator resolves backend identifiers and produces cleaned completions.
type Generator struct {
	registry    *llm.Registry
	maxTokens   int
	temperature float64
	logger      *logger.Logger
}

// New creates a generator over the given backend registry.
func New(registry *llm.Registry, maxTokens int, temperature float64, log *logger.Logger) *Generator {
	return &Generator{
		registry:    registry,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      log,
	}
}

// Generate assembles the prompt for a query, sends a single non-streaming
// completion to the selected backend and returns the cleaned text. There is
// no retry: a transient failure surfaces immediately as a *BackendError.
func (g *Generator) Generate(ctx context.Context, query, contextSummary, backend string) (string, error) {
	b, ok := g.registry.Lookup(backend)
	if !ok || b.Client == nil {
		return "", fmt.Errorf("%w: %s", ErrBackendUnavailable, backend)
	}

	prompt := BuildPrompt(query, contextSummary)
	start := time.Now()

	resp, err := b.Client.Complete(ctx, &llm.CompletionRequest{
		Model:       b.Model,
		Messages:    []llm.ChatMessage{{Role: "system", Content: prompt}},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		metrics.RecordBackendCall(backend, "error", time.Since(start).Seconds(), 0, 0)
		return "", &BackendError{Backend: backend, Err: err}
	}

	metrics.RecordBackendCall(backend, "success", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)
	g.logger.Debug("completion received",
		zap.String("backend", backend),
		zap.Int("tokens_in", resp.TokensIn),
		zap.Int("tokens_out", resp.TokensOut),
		zap.Int64("latency_ms", resp.LatencyMs),
	)

	return Clean(resp.Content), nil
}

// Backends returns the registered backend identifiers.
func (g *Generator) Backends() []string {
	return g.registry.IDs()
}
