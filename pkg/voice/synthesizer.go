package voice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbreeze/pkg/config"
	"github.com/umputun/newsbreeze/pkg/domain"
)

// State tracks engine readiness
type State int

// engine lifecycle states
const (
	StateUnloaded State = iota
	StateLoaded
	StateFailed
)

// Synthesizer produces narrated audio by trying engines in order: voice
// cloning, built-in voice, OS speech utility. It stops at the first success
// and aggregates failure reasons when all tiers fail.
type Synthesizer struct {
	engines []Engine

	once  sync.Once
	mu    sync.RWMutex
	state State
}

// NewSynthesizer creates a synthesizer with the default engine tiers
func NewSynthesizer(cfg config.VoiceConfig) *Synthesizer {
	return &Synthesizer{
		engines: []Engine{
			NewCloneEngine(cfg),
			NewBuiltinEngine(cfg),
			NewSystemEngine(cfg.SampleRate),
		},
	}
}

// NewSynthesizerWithEngines creates a synthesizer with a custom engine chain
func NewSynthesizerWithEngines(engines ...Engine) *Synthesizer {
	return &Synthesizer{engines: engines}
}

// EnsureReady probes engine availability once, transitioning Unloaded to
// Loaded or Failed. Idempotent, callable from any request path.
func (s *Synthesizer) EnsureReady() {
	s.once.Do(func() {
		state := StateFailed
		for _, e := range s.engines {
			if e.Available() {
				state = StateLoaded
				lgr.Printf("[INFO] voice engine %s available", e.Name())
			}
		}
		if state == StateFailed {
			lgr.Printf("[WARN] no voice engine available")
		}
		s.mu.Lock()
		s.state = state
		s.mu.Unlock()
	})
}

// Ready reports whether at least one engine is available
func (s *Synthesizer) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateLoaded
}

// Synthesize renders the text with the given voice profile into outputPath.
// Engines are tried in order; the first success wins.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, profile domain.VoiceProfile, outputPath string) error {
	s.EnsureReady()

	cleaned := PrepareText(text)
	if cleaned == "" {
		return fmt.Errorf("empty input")
	}

	var failures []string
	for _, e := range s.engines {
		if !e.Available() {
			failures = append(failures, e.Name()+": not available")
			continue
		}
		if err := e.Synthesize(ctx, cleaned, profile, outputPath); err != nil {
			lgr.Printf("[WARN] voice engine %s failed for voice %s: %v", e.Name(), profile.ID, err)
			failures = append(failures, e.Name()+": "+err.Error())
			continue
		}
		lgr.Printf("[DEBUG] synthesized %d chars with engine %s, voice %s", len(cleaned), e.Name(), profile.ID)
		return nil
	}

	return fmt.Errorf("all voice engines failed: %s", strings.Join(failures, "; "))
}
