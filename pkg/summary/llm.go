package summary

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsbreeze/pkg/config"
)

const defaultSystemPrompt = `You are a news summarization assistant. Produce a concise abstractive summary of the provided article text.

Rules:
- The summary must be between the requested minimum and maximum word counts.
- Write directly about the content itself. NEVER use phrases like "The article discusses", "This piece explores", "The author explains".
- Preserve key facts, names and numbers; drop opinions and filler.
- Write the summary in the same language as the article.
- Respond with the summary text only, no preamble and no quotes.`

// LLM is the primary summarization engine backed by an OpenAI-compatible
// endpoint. The client is created lazily on first use so a misconfigured
// model degrades the request instead of failing startup.
type LLM struct {
	cfg config.SummaryConfig

	once   sync.Once
	mu     sync.RWMutex
	client *openai.Client
}

// NewLLM creates a summarizer for the configured endpoint
func NewLLM(cfg config.SummaryConfig) *LLM {
	return &LLM{cfg: cfg}
}

// Name identifies the engine in logs and degraded-result reporting
func (l *LLM) Name() string { return "llm" }

// EnsureReady prepares the client, idempotent and safe from any request path
func (l *LLM) EnsureReady() {
	l.once.Do(func() {
		clientConfig := openai.DefaultConfig(l.cfg.APIKey)
		if l.cfg.Endpoint != "" {
			clientConfig.BaseURL = l.cfg.Endpoint
		}
		l.mu.Lock()
		l.client = openai.NewClientWithConfig(clientConfig)
		l.mu.Unlock()
		lgr.Printf("[INFO] summarization engine ready, model %s", l.cfg.Model)
	})
}

// Ready reports whether the engine has been initialized. Safe to call while
// another goroutine is warming the engine up.
func (l *LLM) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.client != nil
}

// Summarize produces an abstractive summary of the text. Input shorter than
// the configured word threshold bypasses the model and is returned cleaned,
// so it still lands in the cache like any other summary.
func (l *LLM) Summarize(ctx context.Context, text string) (string, error) {
	cleaned := Normalize(text)
	if cleaned == "" {
		return "", fmt.Errorf("empty input")
	}

	inputWords := len(strings.Fields(cleaned))
	if inputWords < l.cfg.MinWords {
		lgr.Printf("[DEBUG] text too short for summarization (%d words), returning as is", inputWords)
		return cleaned, nil
	}

	l.EnsureReady()

	// scale bounds down for short inputs so the summary stays shorter
	// than the original
	maxLen := min(l.cfg.MaxLength, inputWords/2)
	minLen := min(l.cfg.MinLength, maxLen-10)
	if minLen < 1 {
		minLen = 1
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       l.cfg.Model,
		Temperature: float32(l.cfg.Temperature),
		MaxTokens:   l.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: defaultSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Summarize in %d-%d words:\n\n%s", minLen, maxLen, cleaned),
			},
		},
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	result := Postprocess(resp.Choices[0].Message.Content)
	if result == "" {
		return "", fmt.Errorf("empty summary from llm")
	}

	lgr.Printf("[DEBUG] summarized %d words -> %d words", inputWords, len(strings.Fields(result)))
	return result, nil
}
