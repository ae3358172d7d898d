package moderation

import (
	"regexp"
	"strings"
	"unicode"
)

// Text statistics used by built-in and custom evaluators.

var (
	sentencePattern = regexp.MustCompile(`[.!?]+`)
	linkPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern  = regexp.MustCompile(`@\w+`)
	hashtagPattern  = regexp.MustCompile(`#\w+`)
	emojiPattern    = regexp.MustCompile(`[\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}]+`)
)

func CountWords(text string) int {
	return len(strings.Fields(text))
}

func CountSentences(text string) int {
	return len(sentencePattern.FindAllString(text, -1))
}

func CountLinks(text string) int {
	return len(linkPattern.FindAllString(text, -1))
}

func CountMentions(text string) int {
	return len(mentionPattern.FindAllString(text, -1))
}

func CountHashtags(text string) int {
	return len(hashtagPattern.FindAllString(text, -1))
}

func CountEmojis(text string) int {
	return len(emojiPattern.FindAllString(text, -1))
}

// DetectCapsAbuse reports whether the share of upper-case letters among all
// letters reaches the given ratio.
func DetectCapsAbuse(text string, ratio float64) bool {
	alpha := 0
	caps := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			alpha++
			if unicode.IsUpper(r) {
				caps++
			}
		}
	}
	if alpha == 0 {
		return false
	}
	return float64(caps)/float64(alpha) >= ratio
}

// DetectRepetition reports whether any character or word repeats at least
// minRepeats times. RE2 has no backreferences, so character floods are
// detected by scanning rather than a pattern.
func DetectRepetition(text string, minRepeats int) bool {
	if minRepeats < 2 {
		minRepeats = 2
	}

	run := 0
	var prev rune
	for i, r := range text {
		if i > 0 && r == prev {
			run++
			if run+1 > minRepeats {
				return true
			}
		} else {
			run = 0
		}
		prev = r
	}

	words := strings.Fields(strings.ToLower(text))
	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
		if counts[word] >= minRepeats {
			return true
		}
	}

	return false
}

// Readability scores average sentence length on a coarse 0..1 scale; lower is
// more readable.
func Readability(text string) float64 {
	sentences := CountSentences(text)
	if sentences == 0 {
		return 0.0
	}

	avg := float64(CountWords(text)) / float64(sentences)
	switch {
	case avg <= 10:
		return 0.0
	case avg <= 20:
		return 0.3
	case avg <= 30:
		return 0.6
	default:
		return 1.0
	}
}
