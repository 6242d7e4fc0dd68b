package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psychohealer/psychohealer/internal/model"
)

func TestFormatResponse(t *testing.T) {
	t.Parallel()

	resp := &model.ChatResponse{
		Response: "Try a short grounding exercise before bed.",
		YouTubeVideos: []model.Video{
			{Title: "Sleep Hygiene Basics", URL: "https://www.youtube.com/watch?v=a"},
			{Title: "Evening Wind-Down", URL: "https://www.youtube.com/watch?v=b"},
		},
	}

	got := formatResponse(resp)

	assert.Contains(t, got, "Try a short grounding exercise before bed.")
	assert.Contains(t, got, "Recommended Videos:")
	assert.Contains(t, got, "1. Sleep Hygiene Basics\nhttps://www.youtube.com/watch?v=a")
	assert.Contains(t, got, "2. Evening Wind-Down\nhttps://www.youtube.com/watch?v=b")
}

func TestFormatResponseNoVideos(t *testing.T) {
	t.Parallel()

	got := formatResponse(&model.ChatResponse{Response: "You matter."})
	assert.Equal(t, "You matter.", got)
}

func TestFormatResponseCapsVideoList(t *testing.T) {
	t.Parallel()

	resp := &model.ChatResponse{
		Response: "r",
		YouTubeVideos: []model.Video{
			{Title: "One", URL: "u1"},
			{Title: "Two", URL: "u2"},
			{Title: "Three", URL: "u3"},
			{Title: "Four", URL: "u4"},
		},
	}

	got := formatResponse(resp)
	assert.Contains(t, got, "Three")
	assert.NotContains(t, got, "Four")
}
