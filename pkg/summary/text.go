package summary

import (
	"regexp"
	"strings"
	"unicode"
)

const maxInputWords = 1000

var (
	urlRe      = regexp.MustCompile(`http[s]?://\S+`)
	emailRe    = regexp.MustCompile(`\S+@\S+`)
	ellipsisRe = regexp.MustCompile(`[.]{3,}`)
	bangRe     = regexp.MustCompile(`[!]{2,}`)
	questionRe = regexp.MustCompile(`[?]{2,}`)
)

// Normalize cleans text before hashing and summarization so cache keys stay
// stable across cosmetic input variance: whitespace is collapsed, URLs and
// e-mail addresses are stripped, runs of punctuation are squeezed, and input
// is capped to avoid model overload.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.Join(strings.Fields(text), " ")
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = ellipsisRe.ReplaceAllString(text, "...")
	text = bangRe.ReplaceAllString(text, "!")
	text = questionRe.ReplaceAllString(text, "?")

	words := strings.Fields(text)
	if len(words) > maxInputWords {
		words = words[:maxInputWords]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// phrases models tend to prepend despite instructions
var redundantPhrases = []string{
	"In this article,",
	"This article discusses",
	"The article states that",
	"According to the article,",
}

// Postprocess cleans up a generated summary: proper capitalization,
// terminal punctuation, and boilerplate lead-ins removed.
func Postprocess(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, phrase := range redundantPhrases {
		if strings.HasPrefix(s, phrase) {
			s = strings.TrimSpace(strings.TrimPrefix(s, phrase))
			break
		}
	}
	if s == "" {
		return ""
	}

	runes := []rune(s)
	if unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		s = string(runes)
	}

	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}

var sentenceEndRe = regexp.MustCompile(`([.!?])\s+`)

// SplitSentences breaks text into sentences on terminal punctuation
func SplitSentences(text string) []string {
	marked := sentenceEndRe.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
