package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "valid query", query: "I feel anxious about work", wantErr: false},
		{name: "empty", query: "", wantErr: true},
		{name: "whitespace only", query: "   \n\t ", wantErr: true},
		{name: "at length limit", query: strings.Repeat("a", 100000), wantErr: false},
		{name: "over length limit", query: strings.Repeat("a", 100001), wantErr: true},
		{name: "invalid utf8", query: string([]byte{0xff, 0xfe}), wantErr: true},
		{name: "unicode", query: "Мне тревожно", wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid id", id: "user-123", wantErr: false},
		{name: "telegram chat id", id: "8423991203", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "at length limit", id: strings.Repeat("x", 64), wantErr: false},
		{name: "over length limit", id: strings.Repeat("x", 65), wantErr: true},
		{name: "invalid utf8", id: string([]byte{0xc3, 0x28}), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateUserID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
