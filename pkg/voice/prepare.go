package voice

import (
	"strings"
	"unicode/utf8"
)

const maxSpeechChars = 1000

// characters that trip up TTS models, replaced with ASCII equivalents
var speechReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"—", "-", // em dash
	"–", "-", // en dash
	"…", "...", // ellipsis
)

// PrepareText cleans text for speech synthesis: unicode punctuation is
// normalized and overly long input is truncated at a sentence boundary.
func PrepareText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = speechReplacer.Replace(text)
	if len(text) <= maxSpeechChars {
		return text
	}

	// truncate at a sentence boundary
	sentences := strings.Split(text, ". ")
	var kept []string
	charCount := 0
	for _, sentence := range sentences {
		if charCount+len(sentence) > maxSpeechChars {
			break
		}
		kept = append(kept, sentence)
		charCount += len(sentence) + 2
	}

	if len(kept) == 0 { // single run-on sentence, hard cut at a rune boundary
		cut := maxSpeechChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return text[:cut]
	}

	text = strings.Join(kept, ". ")
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}
