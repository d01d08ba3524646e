package voice

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/umputun/newsbreeze/pkg/config"
	"github.com/umputun/newsbreeze/pkg/domain"
)

// Engine is a single synthesis strategy: text plus voice profile in, audio
// file at outputPath out
type Engine interface {
	Name() string
	Synthesize(ctx context.Context, text string, profile domain.VoiceProfile, outputPath string) error
	Available() bool
}

// CloneEngine runs the TTS binary with a reference sample for voice cloning
type CloneEngine struct {
	cfg config.VoiceConfig
}

// NewCloneEngine creates the voice cloning engine
func NewCloneEngine(cfg config.VoiceConfig) *CloneEngine {
	return &CloneEngine{cfg: cfg}
}

// Name identifies the engine in logs
func (e *CloneEngine) Name() string { return "clone" }

// Available reports whether the TTS binary can be found
func (e *CloneEngine) Available() bool {
	_, err := exec.LookPath(e.cfg.Binary)
	return err == nil
}

// Synthesize clones the profile's voice from its reference sample. Fails
// fast for profiles without a usable sample so the next tier takes over.
func (e *CloneEngine) Synthesize(ctx context.Context, text string, profile domain.VoiceProfile, outputPath string) error {
	if profile.ReferenceSample == "" {
		return fmt.Errorf("voice %s has no reference sample", profile.ID)
	}

	args := []string{
		"--model_name", e.cfg.ModelPath,
		"--text", text,
		"--speaker_wav", profile.ReferenceSample,
		"--language_idx", profile.Language,
		"--out_path", outputPath,
	}

	cmd := exec.CommandContext(ctx, e.cfg.Binary, args...) //nolint:gosec // binary comes from config
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tts clone failed: %w (output: %.200s)", err, string(out))
	}
	return nil
}

// BuiltinEngine runs the TTS binary with its generic built-in voice,
// ignoring the profile's reference sample
type BuiltinEngine struct {
	cfg config.VoiceConfig
}

// NewBuiltinEngine creates the built-in voice engine
func NewBuiltinEngine(cfg config.VoiceConfig) *BuiltinEngine {
	return &BuiltinEngine{cfg: cfg}
}

// Name identifies the engine in logs
func (e *BuiltinEngine) Name() string { return "builtin" }

// Available reports whether the TTS binary can be found
func (e *BuiltinEngine) Available() bool {
	_, err := exec.LookPath(e.cfg.Binary)
	return err == nil
}

// Synthesize produces audio with the model's default voice
func (e *BuiltinEngine) Synthesize(ctx context.Context, text string, _ domain.VoiceProfile, outputPath string) error {
	args := []string{
		"--model_name", e.cfg.ModelPath,
		"--text", text,
		"--out_path", outputPath,
	}

	cmd := exec.CommandContext(ctx, e.cfg.Binary, args...) //nolint:gosec // binary comes from config
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tts builtin failed: %w (output: %.200s)", err, string(out))
	}
	return nil
}

// SystemEngine is the last-resort tier using the OS speech utility, espeak
// on Linux or say on macOS
type SystemEngine struct {
	sampleRate int
}

// NewSystemEngine creates the OS speech utility engine
func NewSystemEngine(sampleRate int) *SystemEngine {
	return &SystemEngine{sampleRate: sampleRate}
}

// Name identifies the engine in logs
func (e *SystemEngine) Name() string { return "system" }

// Available reports whether any OS speech utility can be found
func (e *SystemEngine) Available() bool {
	if _, err := exec.LookPath("espeak"); err == nil {
		return true
	}
	_, err := exec.LookPath("say")
	return err == nil
}

// Synthesize tries espeak first, then say
func (e *SystemEngine) Synthesize(ctx context.Context, text string, _ domain.VoiceProfile, outputPath string) error {
	if _, err := exec.LookPath("espeak"); err == nil {
		cmd := exec.CommandContext(ctx, "espeak", "-s", "150", "-v", "en+f3", "-w", outputPath, text)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("espeak failed: %w (output: %.200s)", err, string(out))
		}
		return nil
	}

	if _, err := exec.LookPath("say"); err == nil {
		format := "--data-format=LEI16@" + strconv.Itoa(e.sampleRate)
		cmd := exec.CommandContext(ctx, "say", "-o", outputPath, format, text)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("say failed: %w (output: %.200s)", err, string(out))
		}
		return nil
	}

	return fmt.Errorf("no system speech utility available")
}
