package summary

import (
	"context"
	"fmt"
	"strings"
)

// Extractive is the fallback summarization engine. It ranks sentences by
// aggregate word frequency and picks the top ones preserving original order,
// so a model outage degrades to a usable summary instead of an error.
type Extractive struct {
	sentences int
}

// NewExtractive creates the fallback engine keeping up to n sentences
func NewExtractive(n int) *Extractive {
	if n <= 0 {
		n = 3
	}
	return &Extractive{sentences: n}
}

// Name identifies the engine in logs and degraded-result reporting
func (e *Extractive) Name() string { return "extractive" }

// Summarize picks the highest-scoring sentences from the text
func (e *Extractive) Summarize(_ context.Context, text string) (string, error) {
	cleaned := Normalize(text)
	if cleaned == "" {
		return "", fmt.Errorf("empty input")
	}

	sentences := SplitSentences(cleaned)
	if len(sentences) <= e.sentences {
		return cleaned, nil
	}

	// word frequency over the whole text
	freq := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(cleaned)) {
		if w = strings.Trim(w, `.,!?;:"'()[]`); w != "" {
			freq[w]++
		}
	}

	// score each sentence by the frequency of its words
	scores := make([]int, len(sentences))
	for i, sentence := range sentences {
		for _, w := range strings.Fields(strings.ToLower(sentence)) {
			if w = strings.Trim(w, `.,!?;:"'()[]`); w != "" {
				scores[i] += freq[w]
			}
		}
	}

	// pick the cutoff score of the top-N sentences
	top := make([]int, len(scores))
	copy(top, scores)
	for i := 0; i < e.sentences; i++ { // partial selection sort, N is tiny
		maxIdx := i
		for j := i + 1; j < len(top); j++ {
			if top[j] > top[maxIdx] {
				maxIdx = j
			}
		}
		top[i], top[maxIdx] = top[maxIdx], top[i]
	}
	cutoff := top[e.sentences-1]

	// keep top sentences in original order
	var picked []string
	for i, sentence := range sentences {
		if scores[i] >= cutoff {
			picked = append(picked, sentence)
		}
		if len(picked) >= e.sentences {
			break
		}
	}

	return strings.Join(picked, " "), nil
}
