// Package service implements the news orchestrator, the coordinating layer
// between the feed collector, the summarization and voice engines, and the
// file cache. Every request flow returns a structured result: engine and
// cache failures degrade the response, they never surface as transport
// faults.
package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/newsbreeze/pkg/cache"
	"github.com/umputun/newsbreeze/pkg/domain"
	"github.com/umputun/newsbreeze/pkg/fingerprint"
	"github.com/umputun/newsbreeze/pkg/summary"
	"github.com/umputun/newsbreeze/pkg/voice"
)

//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . Collector
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/synthesizer.go -pkg mocks -skip-ensure -fmt goimports . Synthesizer

// Collector fetches and normalizes articles from configured sources
type Collector interface {
	Fetch(ctx context.Context, sources []string, category string) ([]domain.Article, error)
	Sources() []domain.SourceInfo
	TestSource(ctx context.Context, name string) domain.SourceStatus
}

// Summarizer is a single summarization strategy
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Name() string
}

// Synthesizer renders text into an audio file with the given voice profile
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, profile domain.VoiceProfile, outputPath string) error
	Ready() bool
}

// Params holds all orchestrator dependencies
type Params struct {
	Collector       Collector
	Summarizers     []Summarizer // ordered fallback chain, first is primary
	Synthesizer     Synthesizer
	Voices          *voice.Catalog
	Store           *cache.Store
	RefreshInterval time.Duration
}

// Orchestrator owns the in-memory news snapshot and routes requests to the
// engines through the cache store
type Orchestrator struct {
	collector       Collector
	summarizers     []Summarizer
	synthesizer     Synthesizer
	voices          *voice.Catalog
	store           *cache.Store
	refreshInterval time.Duration

	snapshot atomic.Pointer[domain.Snapshot]
	refresh  singleflight.Group
	now      func() time.Time
}

// NewOrchestrator creates the orchestrator with injected dependencies
func NewOrchestrator(p Params) *Orchestrator {
	if p.RefreshInterval == 0 {
		p.RefreshInterval = 30 * time.Minute
	}
	return &Orchestrator{
		collector:       p.Collector,
		summarizers:     p.Summarizers,
		synthesizer:     p.Synthesizer,
		voices:          p.Voices,
		store:           p.Store,
		refreshInterval: p.RefreshInterval,
		now:             time.Now,
	}
}

// GetNews returns the current news snapshot, refreshing it when forced,
// never fetched, or older than the refresh interval. A failed refresh
// degrades to the previous snapshot; the request fails outright only when
// no snapshot has ever been obtained.
func (o *Orchestrator) GetNews(ctx context.Context, sources []string, category string, forceRefresh bool) domain.NewsResult {
	snap := o.snapshot.Load()
	if !forceRefresh && snap != nil && o.now().Sub(snap.FetchedAt) <= o.refreshInterval {
		return newsResult(snap, false)
	}

	// concurrent requests deciding "stale" at the same time share one fetch
	v, err, _ := o.refresh.Do(refreshKey(sources, category), func() (interface{}, error) {
		lgr.Printf("[INFO] fetching fresh news, sources=%v category=%q", sources, category)
		articles, ferr := o.collector.Fetch(ctx, sources, category)
		if ferr != nil {
			return nil, ferr
		}

		// the new snapshot replaces the old one wholesale, even for a
		// scoped fetch: no merging with articles from unscoped sources
		fresh := &domain.Snapshot{Articles: articles, FetchedAt: o.now()}
		o.snapshot.Store(fresh)
		if serr := o.store.SaveSnapshot(fresh); serr != nil {
			lgr.Printf("[WARN] failed to persist news snapshot: %v", serr)
		}
		return fresh, nil
	})
	if err != nil {
		if snap == nil {
			lgr.Printf("[ERROR] news fetch failed with no prior snapshot: %v", err)
			return domain.NewsResult{Success: false, Error: err.Error(), Articles: []domain.Article{}}
		}
		lgr.Printf("[WARN] news fetch failed, serving previous snapshot: %v", err)
		return newsResult(snap, true)
	}

	return newsResult(v.(*domain.Snapshot), false)
}

// Summarize returns a summary for the text, cached by content fingerprint.
// Engines are tried in order; cache read failures degrade to recompute and
// write failures degrade to an uncached success.
func (o *Orchestrator) Summarize(ctx context.Context, text, sourceURL string) domain.SummaryResult {
	// normalize before hashing so cosmetic input variance maps to one key
	cleaned := summary.Normalize(text)
	if cleaned == "" {
		return domain.SummaryResult{Success: false, Error: "no text provided"}
	}
	key := fingerprint.Text(cleaned)

	if o.store.Has(cache.NamespaceSummaries, key) {
		entry, err := o.store.GetSummary(key)
		if err == nil {
			return domain.SummaryResult{Success: true, Summary: entry.Summary, Cached: true}
		}
		lgr.Printf("[WARN] summary cache read failed, recomputing: %v", err)
	}

	for _, engine := range o.summarizers {
		result, err := engine.Summarize(ctx, cleaned)
		if err != nil {
			lgr.Printf("[WARN] summarizer %s failed: %v", engine.Name(), err)
			continue
		}

		entry := cache.SummaryEntry{Summary: result, Timestamp: o.now(), URL: sourceURL}
		if perr := o.store.PutSummary(key, entry); perr != nil {
			lgr.Printf("[WARN] summary computed but not cached: %v", perr)
		}
		return domain.SummaryResult{Success: true, Summary: result, Cached: false}
	}

	return domain.SummaryResult{Success: false, Error: "summarization failed"}
}

// Synthesize returns narrated audio for the text, cached per (voice, text)
// pair. Unknown voices fall back to the default profile; the cache key
// keeps the requested voice ID so repeat requests still hit.
func (o *Orchestrator) Synthesize(ctx context.Context, text, voiceID string) domain.AudioResult {
	cleaned := voice.PrepareText(text)
	if cleaned == "" {
		return domain.AudioResult{Success: false, Error: "no text provided"}
	}
	key := fingerprint.Audio(voiceID, cleaned)

	if o.store.Has(cache.NamespaceAudio, key) {
		return domain.AudioResult{Success: true, AudioFile: "audio/" + key + ".wav", Cached: true}
	}

	profile, ok := o.voices.Resolve(voiceID)
	if !ok {
		profile = o.voices.Default()
		lgr.Printf("[WARN] voice %s not found, using %s", voiceID, profile.ID)
	}

	// render to a temp name and rename into place so a concurrent cache
	// check never observes a partially written file
	finalPath := o.store.Path(cache.NamespaceAudio, key)
	tmpPath := fmt.Sprintf("%s.tmp-%d", finalPath, o.now().UnixNano())
	if err := o.synthesizer.Synthesize(ctx, cleaned, profile, tmpPath); err != nil {
		lgr.Printf("[ERROR] voice synthesis failed for voice %s: %v", voiceID, err)
		return domain.AudioResult{Success: false, Error: "voice synthesis failed"}
	}
	if err := commitAudio(tmpPath, finalPath); err != nil {
		lgr.Printf("[ERROR] failed to finalize audio file: %v", err)
		return domain.AudioResult{Success: false, Error: "voice synthesis failed"}
	}

	return domain.AudioResult{Success: true, AudioFile: "audio/" + key + ".wav", Cached: false}
}

// Voices returns the available voice profiles
func (o *Orchestrator) Voices() []domain.VoiceProfile {
	return o.voices.List()
}

// CloneVoice registers a new voice from a reference sample
func (o *Orchestrator) CloneVoice(referencePath, id, description string) error {
	return o.voices.Clone(referencePath, id, description)
}

// Sources returns the configured feed catalog
func (o *Orchestrator) Sources() []domain.SourceInfo {
	return o.collector.Sources()
}

// TestSource probes a single configured source
func (o *Orchestrator) TestSource(ctx context.Context, name string) domain.SourceStatus {
	return o.collector.TestSource(ctx, name)
}

// Health describes engine readiness and cache state
type Health struct {
	Status                string `json:"status"`
	SummarizerReady       bool   `json:"summarizer_ready"`
	VoiceSynthesizerReady bool   `json:"voice_synthesizer_ready"`
	AvailableVoices       int    `json:"available_voices"`
	CachedArticles        int    `json:"cached_articles"`
	CacheSizeBytes        int64  `json:"cache_size_bytes"`
}

// Health reports readiness of each engine plus cache accounting
func (o *Orchestrator) Health() Health {
	h := Health{
		Status:                "healthy",
		VoiceSynthesizerReady: o.synthesizer.Ready(),
		AvailableVoices:       len(o.voices.List()),
		CacheSizeBytes:        o.store.Size(),
	}

	if len(o.summarizers) > 0 {
		if r, ok := o.summarizers[0].(interface{ Ready() bool }); ok {
			h.SummarizerReady = r.Ready()
		} else {
			h.SummarizerReady = true
		}
	}

	if snap := o.snapshot.Load(); snap != nil {
		h.CachedArticles = len(snap.Articles)
	}
	return h
}

// newsResult builds the response from a snapshot
func newsResult(snap *domain.Snapshot, stale bool) domain.NewsResult {
	return domain.NewsResult{
		Success:       true,
		Articles:      snap.Articles,
		LastUpdated:   snap.FetchedAt.Format(time.RFC3339),
		TotalArticles: len(snap.Articles),
		Stale:         stale,
	}
}

// commitAudio atomically publishes a rendered audio file
func commitAudio(tmpPath, finalPath string) error {
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename audio file: %w", err)
	}
	return nil
}

// refreshKey dedupes concurrent refreshes with identical scope
func refreshKey(sources []string, category string) string {
	return strings.Join(sources, ",") + "|" + category
}
