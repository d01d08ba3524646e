// Package summary provides the summarization engines: a primary LLM-backed
// engine and an extractive fallback. Engines are tried in order by the
// orchestrator; each is a self-contained strategy behind the same interface.
package summary

import "context"

// Engine produces a short summary of the given text
type Engine interface {
	Summarize(ctx context.Context, text string) (string, error)
	Name() string
}

// both engines satisfy the same contract
var (
	_ Engine = (*LLM)(nil)
	_ Engine = (*Extractive)(nil)
)
