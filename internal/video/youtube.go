package video

import (
	"context"
	"errors"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/psychohealer/psychohealer/internal/model"
)

// YouTubeSearcher implements Searcher against the YouTube Data API v3.
type YouTubeSearcher struct {
	service *youtube.Service
}

// NewYouTubeSearcher creates a searcher with the given API key.
func NewYouTubeSearcher(ctx context.Context, apiKey string) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, errors.New("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &YouTubeSearcher{service: service}, nil
}

// Search runs one snippet search for videos matching the query.
func (s *YouTubeSearcher) Search(ctx context.Context, query string, maxResults int) ([]model.Video, error) {
	call := s.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		RelevanceLanguage("en").
		SafeSearch("strict").
		Order("relevance").
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, model.Video{
			Title:       item.Snippet.Title,
			VideoID:     item.Id.VideoId,
			URL:         "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			Description: item.Snippet.Description,
			Channel:     item.Snippet.ChannelTitle,
		})
	}

	return videos, nil
}
