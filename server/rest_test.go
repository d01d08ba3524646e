package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsbreeze/pkg/domain"
	"github.com/umputun/newsbreeze/pkg/service"
	"github.com/umputun/newsbreeze/server/mocks"
)

func startTestServer(t *testing.T, news *mocks.NewsServiceMock, audioDir string) *httptest.Server {
	t.Helper()
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	srv := New(cfg, news, audioDir, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_NewsHandler(t *testing.T) {
	news := &mocks.NewsServiceMock{
		GetNewsFunc: func(_ context.Context, sources []string, category string, forceRefresh bool) domain.NewsResult {
			return domain.NewsResult{
				Success:       true,
				Articles:      []domain.Article{{ID: "1", Title: "hello"}},
				TotalArticles: 1,
				LastUpdated:   "2024-06-01T12:00:00Z",
			}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Get(ts.URL + "/api/news?sources=bbc,%20cnn&category=tech&refresh=true")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.NewsResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.TotalArticles)
	assert.Equal(t, "hello", result.Articles[0].Title)

	require.Len(t, news.GetNewsCalls(), 1)
	call := news.GetNewsCalls()[0]
	assert.Equal(t, []string{"bbc", "cnn"}, call.Sources, "names trimmed")
	assert.Equal(t, "tech", call.Category)
	assert.True(t, call.ForceRefresh)
}

func TestServer_NewsHandlerFailure(t *testing.T) {
	news := &mocks.NewsServiceMock{
		GetNewsFunc: func(_ context.Context, _ []string, _ string, _ bool) domain.NewsResult {
			return domain.NewsResult{Success: false, Error: "all 8 sources failed"}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Get(ts.URL + "/api/news")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var result domain.NewsResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "sources failed")
}

func TestServer_SummarizeHandler(t *testing.T) {
	news := &mocks.NewsServiceMock{
		SummarizeFunc: func(_ context.Context, text, sourceURL string) domain.SummaryResult {
			return domain.SummaryResult{Success: true, Summary: "short version", Cached: true}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Post(ts.URL+"/api/summarize", "application/json",
		strings.NewReader(`{"text":"a long article","url":"https://example.com/a"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.SummaryResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "short version", result.Summary)
	assert.True(t, result.Cached)

	require.Len(t, news.SummarizeCalls(), 1)
	assert.Equal(t, "a long article", news.SummarizeCalls()[0].Text)
	assert.Equal(t, "https://example.com/a", news.SummarizeCalls()[0].SourceURL)

	t.Run("empty text rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/summarize", "application/json", strings.NewReader(`{"text":"  "}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Len(t, news.SummarizeCalls(), 1, "orchestrator not reached")
	})

	t.Run("bad body rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/summarize", "application/json", strings.NewReader("not json"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_SynthesizeHandler(t *testing.T) {
	news := &mocks.NewsServiceMock{
		SynthesizeFunc: func(_ context.Context, text, voiceID string) domain.AudioResult {
			return domain.AudioResult{Success: true, AudioFile: "audio/morgan_freeman_abc.wav"}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Post(ts.URL+"/api/synthesize", "application/json",
		strings.NewReader(`{"text":"breaking news","voice":"morgan_freeman"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.AudioResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "audio/morgan_freeman_abc.wav", result.AudioFile)

	require.Len(t, news.SynthesizeCalls(), 1)
	assert.Equal(t, "morgan_freeman", news.SynthesizeCalls()[0].VoiceID)

	t.Run("empty text rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/synthesize", "application/json", strings.NewReader(`{"voice":"x"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_VoicesHandler(t *testing.T) {
	news := &mocks.NewsServiceMock{
		VoicesFunc: func() []domain.VoiceProfile {
			return []domain.VoiceProfile{{ID: "morgan_freeman", DisplayName: "Morgan Freeman", Available: true}}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Get(ts.URL + "/api/voices")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Voices []domain.VoiceProfile `json:"voices"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Voices, 1)
	assert.Equal(t, "morgan_freeman", result.Voices[0].ID)
}

func TestServer_CloneVoiceHandler(t *testing.T) {
	news := &mocks.NewsServiceMock{
		CloneVoiceFunc: func(_, _, _ string) error { return nil },
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Post(ts.URL+"/api/voices/clone", "application/json",
		strings.NewReader(`{"reference_path":"/tmp/ref.wav","voice_id":"james_earl_jones","description":"deep"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, news.CloneVoiceCalls(), 1)
	assert.Equal(t, "james_earl_jones", news.CloneVoiceCalls()[0].ID)

	t.Run("missing fields rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/voices/clone", "application/json", strings.NewReader(`{"voice_id":"x"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsafe voice id rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/voices/clone", "application/json",
			strings.NewReader(`{"reference_path":"/tmp/ref.wav","voice_id":"../escape"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Len(t, news.CloneVoiceCalls(), 1, "orchestrator not reached")
	})
}

func TestServer_SourcesHandlers(t *testing.T) {
	news := &mocks.NewsServiceMock{
		SourcesFunc: func() []domain.SourceInfo {
			return []domain.SourceInfo{{Name: "bbc", DisplayName: "BBC News"}}
		},
		TestSourceFunc: func(_ context.Context, name string) domain.SourceStatus {
			if name != "bbc" {
				return domain.SourceStatus{Success: false, Error: "source not found"}
			}
			return domain.SourceStatus{Success: true, ArticleCount: 12, FeedTitle: "BBC News"}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	t.Run("catalog", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/sources")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Sources []domain.SourceInfo `json:"sources"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result.Sources, 1)
		assert.Equal(t, "bbc", result.Sources[0].Name)
	})

	t.Run("probe healthy", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/sources/bbc/test")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var status domain.SourceStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		assert.True(t, status.Success)
		assert.Equal(t, 12, status.ArticleCount)
	})

	t.Run("probe unknown", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/sources/nope/test")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}

func TestServer_AudioHandler(t *testing.T) {
	audioDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(audioDir, "voice_abc.wav"), []byte("RIFF fake wav"), 0o600))

	ts := startTestServer(t, &mocks.NewsServiceMock{}, audioDir)

	t.Run("serves existing file", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/audio/voice_abc.wav")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "audio/wav", resp.Header.Get("Content-Type"))
	})

	t.Run("missing file", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/audio/nope.wav")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non wav rejected", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/audio/secrets.txt")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_HealthHandler(t *testing.T) {
	news := &mocks.NewsServiceMock{
		HealthFunc: func() service.Health {
			return service.Health{Status: "healthy", SummarizerReady: true, AvailableVoices: 5, CachedArticles: 42}
		},
	}
	ts := startTestServer(t, news, t.TempDir())

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var h service.Health
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, "healthy", h.Status)
	assert.True(t, h.SummarizerReady)
	assert.Equal(t, 42, h.CachedArticles)
}

func TestServer_StatusAndPing(t *testing.T) {
	ts := startTestServer(t, &mocks.NewsServiceMock{}, t.TempDir())

	t.Run("status", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/status")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var status map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "test", status["version"])
	})

	t.Run("ping", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
