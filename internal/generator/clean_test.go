package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Take a slow breath and name what you feel.",
			want:  "Take a slow breath and name what you feel.",
		},
		{
			name:  "reasoning tag removed",
			input: "[REASONING: user sounds anxious]\nHere is a grounding exercise.",
			want:  "Here is a grounding exercise.",
		},
		{
			name:  "multiline thinking block removed",
			input: "<thinking>\nweigh CBT vs mindfulness\n</thinking>\nLet's start with CBT.",
			want:  "Let's start with CBT.",
		},
		{
			name:  "model selection tag removed",
			input: "[MODEL SELECTION: advanced]\nYou are not alone in this.",
			want:  "You are not alone in this.",
		},
		{
			name:  "leading meta line removed",
			input: "Let me think about your situation.\nAnxiety often peaks in the evening.",
			want:  "Anxiety often peaks in the evening.",
		},
		{
			name:  "blank runs collapsed",
			input: "Step one.\n\n\n\nStep two.",
			want:  "Step one.\n\nStep two.",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   \nYou deserve support.\n\n ",
			want:  "You deserve support.",
		},
		{
			name:  "mid-sentence phrase kept",
			input: "When you say let me think it over, that is a healthy pause.",
			want:  "When you say let me think it over, that is a healthy pause.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Clean(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Clean(got), "Clean should be idempotent")
		})
	}
}
