package summary

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractive_Summarize(t *testing.T) {
	e := NewExtractive(3)

	t.Run("empty input", func(t *testing.T) {
		_, err := e.Summarize(context.Background(), "   ")
		assert.Error(t, err)
	})

	t.Run("short text returned as is", func(t *testing.T) {
		text := "First sentence. Second sentence. Third sentence."
		got, err := e.Summarize(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	})

	t.Run("keeps top sentences in original order", func(t *testing.T) {
		// "market" repeats across three sentences, the weather one scores lowest
		text := "The market opened higher on Monday. Weather was mild. " +
			"Analysts expect the market to keep climbing. The market closed at a record. " +
			"A cat sat quietly."
		got, err := e.Summarize(context.Background(), text)
		require.NoError(t, err)

		sentences := SplitSentences(got)
		require.Len(t, sentences, 3)
		assert.Contains(t, got, "market opened")
		assert.Contains(t, got, "market to keep climbing")
		assert.Contains(t, got, "market closed")
		assert.Less(t, strings.Index(got, "opened"), strings.Index(got, "closed"), "original order preserved")
	})

	t.Run("never exceeds sentence budget", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 20; i++ {
			b.WriteString("Sentence number with some words here. ")
		}
		got, err := e.Summarize(context.Background(), b.String())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(SplitSentences(got)), 3)
	})
}

func TestNewExtractive_Default(t *testing.T) {
	assert.Equal(t, 3, NewExtractive(0).sentences)
	assert.Equal(t, 3, NewExtractive(-1).sentences)
	assert.Equal(t, 5, NewExtractive(5).sentences)
}
