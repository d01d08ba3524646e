package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace collapsed", "hello   world\n\ttoday", "hello world today"},
		{"url stripped", "read https://example.com/story for more", "read for more"},
		{"email stripped", "contact news@example.com today", "contact today"},
		{"long ellipsis squeezed", "and so on......", "and so on..."},
		{"bangs squeezed", "breaking!!! news", "breaking! news"},
		{"questions squeezed", "really??? yes", "really? yes"},
		{"only whitespace", "   \n\t  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}

	t.Run("caps input length", func(t *testing.T) {
		long := strings.Repeat("word ", maxInputWords+100)
		got := Normalize(long)
		assert.Len(t, strings.Fields(got), maxInputWords)
	})

	t.Run("stable across cosmetic variance", func(t *testing.T) {
		assert.Equal(t, Normalize("hello  world"), Normalize("hello\nworld"))
	})
}

func TestPostprocess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"capitalizes", "the market rallied.", "The market rallied."},
		{"adds terminal period", "The market rallied", "The market rallied."},
		{"keeps existing punctuation", "Did the market rally?", "Did the market rally?"},
		{"strips lead-in", "This article discusses the market rally.", "The market rally."},
		{"strips lead-in with comma", "In this article, markets rallied.", "Markets rallied."},
		{"only lead-in", "This article discusses", ""},
		{"trims whitespace", "  markets rallied.  ", "Markets rallied."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Postprocess(tt.input))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single", "One sentence without end", []string{"One sentence without end"}},
		{"periods", "First one. Second one. Third one.", []string{"First one.", "Second one.", "Third one."}},
		{"mixed punctuation", "Really? Yes! Fine.", []string{"Really?", "Yes!", "Fine."}},
		{"no split inside numbers", "Growth hit 3.5 percent. Markets cheered.", []string{"Growth hit 3.5 percent.", "Markets cheered."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSentences(tt.input))
		})
	}
}
