package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError error
		expected    string
	}{
		{
			name:     "empty query",
			query:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			query:    "   ",
			expected: "",
		},
		{
			name:     "simple name",
			query:    "Royal",
			expected: "Royal",
		},
		{
			name:     "trims surrounding spaces",
			query:    "  Diamond Pool  ",
			expected: "Diamond Pool",
		},
		{
			name:     "allowed punctuation",
			query:    "sea-view_villa.2",
			expected: "sea-view_villa.2",
		},
		{
			name:     "keyword inside a word is fine",
			query:    "Executive Suite",
			expected: "Executive Suite",
		},
		{
			name:        "too long",
			query:       strings.Repeat("a", MaxSearchQueryLength+1),
			expectError: ErrSearchTooLong,
		},
		{
			name:        "union select",
			query:       "villa UNION SELECT name",
			expectError: ErrSearchInvalid,
		},
		{
			name:        "or condition",
			query:       "villa or 1=1",
			expectError: ErrSearchInvalid,
		},
		{
			name:        "comment",
			query:       "villa --",
			expectError: ErrSearchInvalid,
		},
		{
			name:        "quote",
			query:       "villa'",
			expectError: ErrSearchInvalid,
		},
		{
			name:        "script tag",
			query:       "<script>",
			expectError: ErrSearchInvalid,
		},
		{
			name:        "wildcard",
			query:       "villa%",
			expectError: ErrSearchInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSearchQuery(tt.query)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeSearchString(t *testing.T) {
	assert.Equal(t, "", SanitizeSearchString(""))
	assert.Equal(t, "pool", SanitizeSearchString("pool"))
	assert.Equal(t, `sea\_view`, SanitizeSearchString("sea_view"))
	assert.Equal(t, `50\%`, SanitizeSearchString("50%"))
	assert.Equal(t, `a\\b`, SanitizeSearchString(`a\b`))
}
