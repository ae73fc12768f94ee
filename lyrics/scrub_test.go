package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses blank line runs",
			input:    "Verse one\n\n\n\n\nVerse two",
			expected: "Verse one\n\nVerse two",
		},
		{
			name:     "strips contributor header",
			input:    "42 Contributors\nVerse one",
			expected: "Verse one",
		},
		{
			name:     "strips embed trailer",
			input:    "Verse one\n123Embed",
			expected: "Verse one",
		},
		{
			name:     "strips suggestion line",
			input:    "Verse one\nYou might also like\nVerse two",
			expected: "Verse one\n\nVerse two",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "\n\nVerse one\n\n",
			expected: "Verse one",
		},
		{
			name:     "keeps lyric lines mentioning embed",
			input:    "My heart is an Embed of gold\nVerse two",
			expected: "My heart is an Embed of gold\nVerse two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Scrub(tt.input))
		})
	}
}
