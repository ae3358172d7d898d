package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	text := "Hey @alice check https://example.com and www.spam.example #deal #now! Really?"

	assert.Equal(t, 9, CountWords(text))
	assert.Equal(t, 2, CountLinks(text))
	assert.Equal(t, 1, CountMentions(text))
	assert.Equal(t, 2, CountHashtags(text))
	assert.Equal(t, 0, CountEmojis(text))
	assert.Equal(t, 1, CountEmojis("nice \U0001F600"))

	// Dots inside URLs count too; the sentence counter is deliberately naive.
	assert.Equal(t, 2, CountSentences("First one. Second one!"))
}

func TestDetectCapsAbuse(t *testing.T) {
	assert.True(t, DetectCapsAbuse("STOP SHOUTING", 0.7))
	assert.False(t, DetectCapsAbuse("normal sentence", 0.7))
	assert.False(t, DetectCapsAbuse("1234 !!!", 0.7))
	// 5 caps out of 10 letters, right on the ratio.
	assert.True(t, DetectCapsAbuse("ABCDEfghij", 0.5))
}

func TestDetectRepetition(t *testing.T) {
	// Character floods need minRepeats+1 consecutive characters, mirroring
	// the (.)\1{3,} rule the repetition metric documents.
	assert.True(t, DetectRepetition("heeeelp", 3))
	assert.False(t, DetectRepetition("heeelp", 3))
	assert.True(t, DetectRepetition("spam spam spam", 3))
	assert.False(t, DetectRepetition("spam spam", 3))
	assert.True(t, DetectRepetition("Spam SPAM spam", 3))
	assert.False(t, DetectRepetition("", 3))
}

func TestReadability(t *testing.T) {
	assert.Equal(t, 0.0, Readability("no terminator at all"))
	assert.Equal(t, 0.0, Readability("Short. Also short."))
	assert.Equal(t, 0.3, Readability("one two three four five six seven eight nine ten eleven twelve."))
	assert.Equal(t, 1.0, Readability(
		"a b c d e f g h i j k l m n o p q r s t u v w x y z aa bb cc dd ee."))
}
