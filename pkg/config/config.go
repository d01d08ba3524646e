package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Cache struct {
		Dir       string        `yaml:"dir" json:"dir" jsonschema:"default=cache,description=Root directory for cached summaries and the news snapshot"`
		AudioDir  string        `yaml:"audio_dir" json:"audio_dir" jsonschema:"default=static/audio,description=Directory for synthesized audio files"`
		VoicesDir string        `yaml:"voices_dir" json:"voices_dir" jsonschema:"default=voices,description=Directory holding voice reference samples"`
		Expiry    time.Duration `yaml:"expiry" json:"expiry" jsonschema:"default=0s,description=Cache entry lifetime checked on read (0 keeps entries forever)"`
		MaxSizeMB int           `yaml:"max_size_mb" json:"max_size_mb" jsonschema:"default=500,description=Advisory cache size limit reported by health checks"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Cache configuration"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News fetching configuration"`

	Summary SummaryConfig `yaml:"summary" json:"summary" jsonschema:"description=Summarization engine configuration"`

	Voice VoiceConfig `yaml:"voice" json:"voice" jsonschema:"description=Voice synthesis configuration"`
}

// Source describes a single configured RSS source
type Source struct {
	URL           string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	DisplayName   string `yaml:"display_name" json:"display_name" jsonschema:"description=Human-readable source name"`
	Category      string `yaml:"category" json:"category" jsonschema:"default=General,description=Source category"`
	Description   string `yaml:"description" json:"description" jsonschema:"description=Source description"`
	DefaultAuthor string `yaml:"default_author" json:"default_author" jsonschema:"description=Author used when the feed omits one"`
}

// NewsConfig holds feed fetching settings
type NewsConfig struct {
	RefreshInterval time.Duration     `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=30m,description=Snapshot staleness threshold"`
	RequestTimeout  time.Duration     `yaml:"request_timeout" json:"request_timeout" jsonschema:"default=10s,description=Per-source fetch timeout"`
	MaxArticles     int               `yaml:"max_articles" json:"max_articles" jsonschema:"default=50,description=Maximum articles per snapshot"`
	PerSourceLimit  int               `yaml:"per_source_limit" json:"per_source_limit" jsonschema:"default=20,description=Maximum entries taken from a single feed"`
	MinWordCount    int               `yaml:"min_word_count" json:"min_word_count" jsonschema:"default=20,description=Articles with shorter descriptions are discarded"`
	MaxWorkers      int               `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent source fetches"`
	UserAgent       string            `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsBreeze/1.0 (News Aggregator),description=User agent for feed requests"`
	Sources         map[string]Source `yaml:"sources" json:"sources" jsonschema:"description=Configured news sources"`
}

// SummaryConfig holds summarization engine settings for an
// OpenAI-compatible endpoint
type SummaryConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	MaxLength   int           `yaml:"max_length" json:"max_length" jsonschema:"default=150,description=Maximum summary length in words"`
	MinLength   int           `yaml:"min_length" json:"min_length" jsonschema:"default=30,description=Minimum summary length in words"`
	MinWords    int           `yaml:"min_words" json:"min_words" jsonschema:"default=50,description=Input shorter than this bypasses the model"`
}

// VoiceConfig holds voice synthesis settings
type VoiceConfig struct {
	Binary       string                  `yaml:"binary" json:"binary" jsonschema:"default=tts,description=TTS binary invoked for synthesis"`
	ModelPath    string                  `yaml:"model_path" json:"model_path" jsonschema:"description=Path to the TTS voice model"`
	SampleRate   int                     `yaml:"sample_rate" json:"sample_rate" jsonschema:"default=22050,description=Output audio sample rate"`
	DefaultVoice string                  `yaml:"default_voice" json:"default_voice" jsonschema:"default=morgan_freeman,description=Voice used when the requested one is unknown"`
	Profiles     map[string]VoiceProfile `yaml:"profiles" json:"profiles" jsonschema:"description=Voice profile catalog"`
}

// VoiceProfile describes a configured narration voice. Sample is a file name
// under the voices directory; profiles without a sample never require one.
type VoiceProfile struct {
	DisplayName string `yaml:"display_name" json:"display_name" jsonschema:"description=Human-readable voice name"`
	Description string `yaml:"description" json:"description" jsonschema:"description=Voice description"`
	Sample      string `yaml:"sample" json:"sample" jsonschema:"description=Reference sample file name (empty for sample-less voices)"`
	Language    string `yaml:"language" json:"language" jsonschema:"default=en,description=Voice language"`
	Gender      string `yaml:"gender" json:"gender" jsonschema:"description=Voice gender"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero-valued settings
func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for cache
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = "cache"
	}
	if cfg.Cache.AudioDir == "" {
		cfg.Cache.AudioDir = "static/audio"
	}
	if cfg.Cache.VoicesDir == "" {
		cfg.Cache.VoicesDir = "voices"
	}
	if cfg.Cache.MaxSizeMB == 0 {
		cfg.Cache.MaxSizeMB = 500
	}

	// set defaults for news
	if cfg.News.RefreshInterval == 0 {
		cfg.News.RefreshInterval = 30 * time.Minute
	}
	if cfg.News.RequestTimeout == 0 {
		cfg.News.RequestTimeout = 10 * time.Second
	}
	if cfg.News.MaxArticles == 0 {
		cfg.News.MaxArticles = 50
	}
	if cfg.News.PerSourceLimit == 0 {
		cfg.News.PerSourceLimit = 20
	}
	if cfg.News.MinWordCount == 0 {
		cfg.News.MinWordCount = 20
	}
	if cfg.News.MaxWorkers == 0 {
		cfg.News.MaxWorkers = 5
	}
	if cfg.News.UserAgent == "" {
		cfg.News.UserAgent = "NewsBreeze/1.0 (News Aggregator)"
	}
	if len(cfg.News.Sources) == 0 {
		cfg.News.Sources = defaultSources()
	}

	// set defaults for summary
	if cfg.Summary.Temperature == 0 {
		cfg.Summary.Temperature = 0.3
	}
	if cfg.Summary.MaxTokens == 0 {
		cfg.Summary.MaxTokens = 500
	}
	if cfg.Summary.Timeout == 0 {
		cfg.Summary.Timeout = 30 * time.Second
	}
	if cfg.Summary.MaxLength == 0 {
		cfg.Summary.MaxLength = 150
	}
	if cfg.Summary.MinLength == 0 {
		cfg.Summary.MinLength = 30
	}
	if cfg.Summary.MinWords == 0 {
		cfg.Summary.MinWords = 50
	}

	// set defaults for voice
	if cfg.Voice.Binary == "" {
		cfg.Voice.Binary = "tts"
	}
	if cfg.Voice.SampleRate == 0 {
		cfg.Voice.SampleRate = 22050
	}
	if cfg.Voice.DefaultVoice == "" {
		cfg.Voice.DefaultVoice = "morgan_freeman"
	}
	if len(cfg.Voice.Profiles) == 0 {
		cfg.Voice.Profiles = defaultVoices()
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate summary config
	if cfg.Summary.Endpoint == "" {
		return fmt.Errorf("summary.endpoint is required")
	}
	if cfg.Summary.Model == "" {
		return fmt.Errorf("summary.model is required")
	}
	if cfg.Summary.Temperature < 0 || cfg.Summary.Temperature > 2 {
		return fmt.Errorf("summary.temperature must be between 0 and 2")
	}
	if cfg.Summary.MinLength >= cfg.Summary.MaxLength {
		return fmt.Errorf("summary.min_length must be less than summary.max_length")
	}

	// validate news config
	if cfg.News.RequestTimeout < time.Second {
		return fmt.Errorf("news.request_timeout must be at least 1 second")
	}
	for name, src := range cfg.News.Sources {
		if src.URL == "" {
			return fmt.Errorf("news source %q has no url", name)
		}
	}

	// validate voice config
	if _, ok := cfg.Voice.Profiles[cfg.Voice.DefaultVoice]; !ok {
		return fmt.Errorf("voice.default_voice %q is not in the profile catalog", cfg.Voice.DefaultVoice)
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// defaultSources is the built-in feed catalog used when the config file
// defines none
func defaultSources() map[string]Source {
	return map[string]Source{
		"bbc": {
			URL:           "http://feeds.bbci.co.uk/news/rss.xml",
			DisplayName:   "BBC News",
			Category:      "General",
			Description:   "British Broadcasting Corporation news feed",
			DefaultAuthor: "BBC News",
		},
		"cnn": {
			URL:           "http://rss.cnn.com/rss/edition.rss",
			DisplayName:   "CNN",
			Category:      "General",
			Description:   "Cable News Network international feed",
			DefaultAuthor: "CNN",
		},
		"reuters": {
			URL:           "https://feeds.reuters.com/reuters/topNews",
			DisplayName:   "Reuters",
			Category:      "General",
			Description:   "Reuters top news feed",
			DefaultAuthor: "Reuters",
		},
		"techcrunch": {
			URL:           "https://feeds.feedburner.com/TechCrunch",
			DisplayName:   "TechCrunch",
			Category:      "Technology",
			Description:   "Technology news and startup information",
			DefaultAuthor: "TechCrunch",
		},
		"guardian": {
			URL:           "https://www.theguardian.com/world/rss",
			DisplayName:   "The Guardian",
			Category:      "General",
			Description:   "The Guardian world news",
			DefaultAuthor: "The Guardian",
		},
		"npr": {
			URL:           "https://feeds.npr.org/1001/rss.xml",
			DisplayName:   "NPR",
			Category:      "General",
			Description:   "National Public Radio news",
			DefaultAuthor: "NPR",
		},
		"wsj": {
			URL:           "https://feeds.a.dj.com/rss/RSSWorldNews.xml",
			DisplayName:   "Wall Street Journal",
			Category:      "Business",
			Description:   "Wall Street Journal world news",
			DefaultAuthor: "WSJ",
		},
		"ap": {
			URL:           "https://feeds.apnews.com/rss/apf-topnews",
			DisplayName:   "Associated Press",
			Category:      "General",
			Description:   "Associated Press top news",
			DefaultAuthor: "AP",
		},
	}
}

// defaultVoices is the built-in voice catalog. The default profile has no
// reference sample and is always available.
func defaultVoices() map[string]VoiceProfile {
	return map[string]VoiceProfile{
		"morgan_freeman": {
			DisplayName: "Morgan Freeman",
			Description: "Deep, authoritative narration",
			Sample:      "morgan_freeman.wav",
			Language:    "en",
			Gender:      "male",
		},
		"david_attenborough": {
			DisplayName: "David Attenborough",
			Description: "Nature documentary style",
			Sample:      "david_attenborough.wav",
			Language:    "en",
			Gender:      "male",
		},
		"barack_obama": {
			DisplayName: "Barack Obama",
			Description: "Presidential, clear delivery",
			Sample:      "barack_obama.wav",
			Language:    "en",
			Gender:      "male",
		},
		"emma_watson": {
			DisplayName: "Emma Watson",
			Description: "British accent, clear pronunciation",
			Sample:      "emma_watson.wav",
			Language:    "en",
			Gender:      "female",
		},
		"default": {
			DisplayName: "Default Voice",
			Description: "Standard synthetic voice",
			Language:    "en",
			Gender:      "neutral",
		},
	}
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetNewsConfig returns news fetching configuration
func (c *Config) GetNewsConfig() NewsConfig {
	return c.News
}

// GetSummaryConfig returns summarization configuration
func (c *Config) GetSummaryConfig() SummaryConfig {
	return c.Summary
}

// GetVoiceConfig returns voice synthesis configuration
func (c *Config) GetVoiceConfig() VoiceConfig {
	return c.Voice
}
