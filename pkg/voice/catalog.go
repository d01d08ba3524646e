// Package voice manages the narration voice catalog and speech synthesis.
// Synthesis runs an external TTS binary with tiered fallback: voice cloning
// from a reference sample, then the generic built-in voice, then the
// operating system speech utility.
package voice

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsbreeze/pkg/config"
	"github.com/umputun/newsbreeze/pkg/domain"
)

// Catalog holds the registered voice profiles. It is populated from the
// config at startup by probing the filesystem for reference samples and may
// grow at runtime through Clone.
type Catalog struct {
	voicesDir string
	defaultID string

	mu       sync.RWMutex
	profiles map[string]domain.VoiceProfile
}

// NewCatalog builds the catalog from configured profiles. Profiles whose
// required reference sample is missing are registered as unavailable; a
// profile without a sample never requires one.
func NewCatalog(cfg config.VoiceConfig, voicesDir string) *Catalog {
	c := &Catalog{
		voicesDir: voicesDir,
		defaultID: cfg.DefaultVoice,
		profiles:  make(map[string]domain.VoiceProfile, len(cfg.Profiles)),
	}

	for id, p := range cfg.Profiles {
		profile := domain.VoiceProfile{
			ID:          id,
			DisplayName: p.DisplayName,
			Description: p.Description,
			Language:    p.Language,
			Gender:      p.Gender,
		}
		if profile.Language == "" {
			profile.Language = "en"
		}
		if p.Sample != "" {
			profile.ReferenceSample = filepath.Join(voicesDir, p.Sample)
		}
		profile.Available = sampleAvailable(profile)
		if !profile.Available {
			lgr.Printf("[INFO] voice %s reference sample not found: %s", id, profile.ReferenceSample)
		}
		c.profiles[id] = profile
	}
	return c
}

// List returns all available profiles, sorted by ID
func (c *Catalog) List() []domain.VoiceProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]domain.VoiceProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		if p.Available {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Resolve returns the available profile for the given ID
func (c *Catalog) Resolve(id string) (domain.VoiceProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.profiles[id]
	if !ok || !p.Available {
		return domain.VoiceProfile{}, false
	}
	return p, true
}

// Default returns the fallback profile used for unknown voice requests. If
// the configured default lacks its reference sample, the first available
// sample-less profile is used instead.
func (c *Catalog) Default() domain.VoiceProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if p, ok := c.profiles[c.defaultID]; ok && p.Available {
		return p
	}

	ids := make([]string, 0, len(c.profiles))
	for id := range c.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if p := c.profiles[id]; p.Available && p.ReferenceSample == "" {
			return p
		}
	}

	// nothing available, synthesize with the built-in voice
	return domain.VoiceProfile{ID: "default", DisplayName: "Default Voice", Language: "en", Available: true}
}

// Clone registers a new voice from a reference sample. The sample is copied
// into the voices directory so the profile survives restarts.
func (c *Catalog) Clone(referencePath, id, description string) error {
	src, err := os.Open(referencePath) //nolint:gosec // path provided by operator request
	if err != nil {
		return fmt.Errorf("open reference sample: %w", err)
	}
	defer src.Close()

	target := filepath.Join(c.voicesDir, id+".wav")
	dst, err := os.Create(target) //nolint:gosec // target under controlled voices dir
	if err != nil {
		return fmt.Errorf("create voice sample: %w", err)
	}
	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(target)
		return fmt.Errorf("copy voice sample: %w", err)
	}
	if err = dst.Close(); err != nil {
		return fmt.Errorf("finalize voice sample: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[id] = domain.VoiceProfile{
		ID:              id,
		DisplayName:     titleize(id),
		Description:     description,
		ReferenceSample: target,
		Language:        "en",
		Gender:          "unknown",
		Available:       true,
	}

	lgr.Printf("[INFO] voice %s cloned from %s", id, referencePath)
	return nil
}

// sampleAvailable reports whether a profile can be used: no sample required,
// or the sample exists on disk
func sampleAvailable(p domain.VoiceProfile) bool {
	if p.ReferenceSample == "" {
		return true
	}
	_, err := os.Stat(p.ReferenceSample)
	return err == nil
}

// titleize converts a snake_case voice ID into a display name
func titleize(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
