package lyrics

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks(t *testing.T) {
	t.Parallel()

	t.Run("short text stays whole", func(t *testing.T) {
		chunks := splitChunks("just one verse", 100)
		assert.Equal(t, []string{"just one verse"}, chunks)
	})

	t.Run("splits at line boundaries", func(t *testing.T) {
		lines := make([]string, 20)
		for i := range lines {
			lines[i] = strings.Repeat("la", 10)
		}
		text := strings.Join(lines, "\n")

		chunks := splitChunks(text, 100)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 100)
			assert.NotEmpty(t, chunk)
		}
		assert.Equal(t, strings.ReplaceAll(text, "\n", ""), strings.ReplaceAll(strings.Join(chunks, ""), "\n", ""))
	})

	t.Run("hard splits an oversized line", func(t *testing.T) {
		text := strings.Repeat("a", 250)
		chunks := splitChunks(text, 100)
		require.Len(t, chunks, 3)
		assert.Equal(t, 100, len(chunks[0]))
		assert.Equal(t, 100, len(chunks[1]))
		assert.Equal(t, 50, len(chunks[2]))
	})

	t.Run("hard split keeps multi-byte runes intact", func(t *testing.T) {
		// 3 bytes per rune, so a 100-byte limit falls mid-rune
		text := strings.Repeat("あ", 90)
		chunks := splitChunks(text, 100)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk), "chunk must be valid UTF-8: %q", chunk)
			assert.LessOrEqual(t, len(chunk), 100)
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
	})
}
