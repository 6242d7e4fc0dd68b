package router

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRules(t *testing.T) {
	t.Parallel()

	r := New(nil, 100)

	tests := []struct {
		name    string
		query   string
		backend string
		reason  string
	}{
		{
			name:    "crisis keyword",
			query:   "I want to hurt myself tonight",
			backend: CrisisBackend,
			reason:  ReasonCrisis,
		},
		{
			name:    "complex condition keyword",
			query:   "my ptsd flashbacks are getting worse",
			backend: ComplexBackend,
			reason:  ReasonComplex,
		},
		{
			name:    "relationship keyword",
			query:   "going through a painful divorce",
			backend: RelationshipBackend,
			reason:  ReasonRelationship,
		},
		{
			name:    "crisis wins over complex",
			query:   "my trauma makes me want to end my life",
			backend: CrisisBackend,
			reason:  ReasonCrisis,
		},
		{
			name:    "complex wins over relationship",
			query:   "my addiction ruined my marriage",
			backend: ComplexBackend,
			reason:  ReasonComplex,
		},
		{
			name:    "case insensitive",
			query:   "THINKING ABOUT SUICIDE",
			backend: CrisisBackend,
			reason:  ReasonCrisis,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := r.Select(tt.query)
			assert.Equal(t, tt.backend, d.Backend)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestSelectGeneralRotation(t *testing.T) {
	t.Parallel()

	rotation := []string{"llama", "deepseek"}
	r := New(rotation, 1000)

	for i := 0; i < 50; i++ {
		d := r.Select(fmt.Sprintf("general question number %d", i))
		assert.Contains(t, rotation, d.Backend)
		assert.Equal(t, ReasonGeneral, d.Reason)
	}
}

func TestSelectMemoization(t *testing.T) {
	t.Parallel()

	r := New([]string{"llama", "deepseek", "mistral", "openai"}, 100)

	first := r.Select("just a general everyday question")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, r.Select("just a general everyday question"))
	}
	// Memoization normalizes case and whitespace.
	assert.Equal(t, first, r.Select("  Just A General Everyday Question  "))
}

func TestSelectCacheEviction(t *testing.T) {
	t.Parallel()

	r := New(nil, 2)

	r.Select("first query")
	r.Select("second query")
	r.Select("third query")

	r.mu.Lock()
	defer r.mu.Unlock()
	require.Len(t, r.cache, 2)
	assert.NotContains(t, r.cache, "first query")
	assert.Contains(t, r.cache, "second query")
	assert.Contains(t, r.cache, "third query")
}

func TestRotationDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"llama", "deepseek"}, New(nil, 10).Rotation())
	assert.Equal(t, []string{"openai"}, New([]string{"openai"}, 10).Rotation())
}
