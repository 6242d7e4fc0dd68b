// Package video recommends therapeutic videos for a query via a third-party
// search provider.
package video

import (
	"context"

	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/model"
	"github.com/psychohealer/psychohealer/pkg/logger"
	"github.com/psychohealer/psychohealer/pkg/metrics"
)

// Searcher issues one search against the video index.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.Video, error)
}

// Topical prefixes used to derive search phrases from the user query.
var searchPrefixes = []string{"psychology therapy", "mental health"}

// queryBudget caps how much of the raw query feeds the search phrase.
const queryBudget = 50

// descriptionBudget caps returned description length.
const descriptionBudget = 100

// Recommender fans user queries out to derived search phrases, then
// deduplicates and truncates the combined results.
type Recommender struct {
	searcher   Searcher
	maxResults int
	logger     *logger.Logger
}

// New creates a recommender. maxResults bounds the final list length.
func New(searcher Searcher, maxResults int, log *logger.Logger) *Recommender {
	if maxResults <= 0 {
		maxResults = 4
	}
	return &Recommender{
		searcher:   searcher,
		maxResults: maxResults,
		logger:     log,
	}
}

// Recommend returns up to maxResults videos for a query. It never fails to
// the caller: any provider error degrades to an empty list.
func (r *Recommender) Recommend(ctx context.Context, query string) []model.Video {
	if r.searcher == nil {
		return []model.Video{}
	}

	if r := []rune(query); len(r) > queryBudget {
		query = string(r[:queryBudget])
	}

	seen := make(map[string]bool)
	out := make([]model.Video, 0, r.maxResults)

	for _, prefix := range searchPrefixes {
		if len(out) >= r.maxResults {
			break
		}

		videos, err := r.searcher.Search(ctx, prefix+" "+query, r.maxResults)
		if err != nil {
			metrics.VideoSearchesTotal.WithLabelValues("error").Inc()
			r.logger.Warn("video search failed", zap.Error(err))
			continue
		}
		metrics.VideoSearchesTotal.WithLabelValues("success").Inc()

		for _, v := range videos {
			if seen[v.VideoID] {
				continue
			}
			seen[v.VideoID] = true
			v.Description = truncate(v.Description, descriptionBudget)
			out = append(out, v)
			if len(out) >= r.maxResults {
				break
			}
		}
	}

	return out
}

// truncate shortens s to n characters. Truncation happens on rune
// boundaries so multibyte text stays valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
