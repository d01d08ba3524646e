package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newsbreeze.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
summary:
  endpoint: http://localhost:11434/v1
  model: llama3
`

func TestLoad_Minimal(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	// server defaults
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)

	// cache defaults
	assert.Equal(t, "cache", cfg.Cache.Dir)
	assert.Equal(t, "static/audio", cfg.Cache.AudioDir)
	assert.Equal(t, "voices", cfg.Cache.VoicesDir)
	assert.Equal(t, time.Duration(0), cfg.Cache.Expiry, "entries kept forever by default")
	assert.Equal(t, 500, cfg.Cache.MaxSizeMB)

	// news defaults
	news := cfg.GetNewsConfig()
	assert.Equal(t, 30*time.Minute, news.RefreshInterval)
	assert.Equal(t, 10*time.Second, news.RequestTimeout)
	assert.Equal(t, 50, news.MaxArticles)
	assert.Equal(t, 20, news.MinWordCount)
	assert.Equal(t, 5, news.MaxWorkers)
	assert.Len(t, news.Sources, 8, "built-in source catalog")
	assert.Contains(t, news.Sources, "bbc")
	assert.Contains(t, news.Sources, "techcrunch")

	// summary defaults
	sum := cfg.GetSummaryConfig()
	assert.Equal(t, "http://localhost:11434/v1", sum.Endpoint)
	assert.Equal(t, "llama3", sum.Model)
	assert.InDelta(t, 0.3, sum.Temperature, 0.001)
	assert.Equal(t, 150, sum.MaxLength)
	assert.Equal(t, 30, sum.MinLength)
	assert.Equal(t, 50, sum.MinWords)

	// voice defaults
	v := cfg.GetVoiceConfig()
	assert.Equal(t, "tts", v.Binary)
	assert.Equal(t, 22050, v.SampleRate)
	assert.Equal(t, "morgan_freeman", v.DefaultVoice)
	assert.Len(t, v.Profiles, 5, "built-in voice catalog")
	assert.Empty(t, v.Profiles["default"].Sample, "default voice needs no sample")
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
cache:
  dir: /tmp/nb-cache
  expiry: 24h
news:
  refresh_interval: 15m
  sources:
    local:
      url: http://localhost:8888/rss
      display_name: Local Feed
      category: tech
summary:
  endpoint: http://localhost:11434/v1
  model: llama3
  max_length: 100
  min_length: 20
voice:
  default_voice: narrator
  profiles:
    narrator:
      display_name: Narrator
      sample: narrator.wav
`))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
	assert.Equal(t, "/tmp/nb-cache", cfg.Cache.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Cache.Expiry)
	assert.Equal(t, 15*time.Minute, cfg.News.RefreshInterval)

	require.Len(t, cfg.News.Sources, 1, "configured sources replace the built-ins")
	assert.Equal(t, "Local Feed", cfg.News.Sources["local"].DisplayName)

	assert.Equal(t, 100, cfg.Summary.MaxLength)
	assert.Equal(t, "narrator", cfg.Voice.DefaultVoice)
	assert.Equal(t, "narrator.wav", cfg.Voice.Profiles["narrator"].Sample)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("NB_TEST_API_KEY", "secret-from-env")

	cfg, err := Load(writeConfig(t, `
summary:
  endpoint: http://localhost:11434/v1
  model: llama3
  api_key: ${NB_TEST_API_KEY}
`))
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Summary.APIKey)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:    "missing endpoint",
			config:  "summary:\n  model: llama3\n",
			wantErr: "summary.endpoint is required",
		},
		{
			name:    "missing model",
			config:  "summary:\n  endpoint: http://localhost/v1\n",
			wantErr: "summary.model is required",
		},
		{
			name:    "bad temperature",
			config:  minimalConfig + "  temperature: 3.5\n",
			wantErr: "summary.temperature",
		},
		{
			name:    "min length above max",
			config:  minimalConfig + "  max_length: 20\n  min_length: 30\n",
			wantErr: "summary.min_length",
		},
		{
			name:    "source without url",
			config:  minimalConfig + "news:\n  sources:\n    broken:\n      display_name: Broken\n",
			wantErr: `news source "broken" has no url`,
		},
		{
			name:    "unknown default voice",
			config:  minimalConfig + "voice:\n  default_voice: nobody\n  profiles:\n    narrator:\n      display_name: Narrator\n",
			wantErr: "voice.default_voice",
		},
		{
			name:    "tiny request timeout",
			config:  minimalConfig + "news:\n  request_timeout: 100ms\n  sources:\n    ok:\n      url: http://localhost/rss\n",
			wantErr: "news.request_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_BadYaml(t *testing.T) {
	_, err := Load(writeConfig(t, "summary: [not a map"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
