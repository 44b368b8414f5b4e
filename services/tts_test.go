package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextToChunksByByte(t *testing.T) {
	text := "First sentence. Second sentence! Third sentence? Fourth sentence."
	chunks := splitTextToChunksByByte(text, 40)

	require.NotEmpty(t, chunks)
	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 40)
	}
	// cuts land on sentence boundaries when one exists inside the budget
	assert.Equal(t, "First sentence. Second sentence!", chunks[0])
}

func TestSplitTextToChunksByByteShortInput(t *testing.T) {
	chunks := splitTextToChunksByByte("tiny", 4500)
	assert.Equal(t, []string{"tiny"}, chunks)
}

func TestSplitTextToChunksByByteNoBoundary(t *testing.T) {
	// no sentence end anywhere: falls back to hard cuts at the budget
	text := strings.Repeat("a", 100)
	chunks := splitTextToChunksByByte(text, 40)

	assert.Equal(t, []string{strings.Repeat("a", 40), strings.Repeat("a", 40), strings.Repeat("a", 20)}, chunks)
}

func TestSplitTextToChunksByByteKeepsRunesIntact(t *testing.T) {
	// a long accented stretch with no punctuation: the 41-byte budget lands
	// in the middle of a 2-byte rune and the cut must move past it
	text := strings.Repeat("é", 30)
	chunks := splitTextToChunksByByte(text, 41)

	require.NotEmpty(t, chunks)
	assert.Equal(t, text, strings.Join(chunks, ""))
	for i, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "chunk %d is not valid UTF-8", i)
	}
}

func TestLanguageCodeFromVoice(t *testing.T) {
	assert.Equal(t, "en-US", languageCodeFromVoice("en-US-Chirp3-HD-Charon"))
	assert.Equal(t, "vi-VN", languageCodeFromVoice("vi-VN-Neural2-A"))
	assert.Equal(t, "en-US", languageCodeFromVoice("broken"))
}
