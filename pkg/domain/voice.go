package domain

// VoiceProfile describes a single narration voice. A profile is available
// when it needs no reference sample or its reference sample exists on disk.
type VoiceProfile struct {
	ID              string `json:"id"`
	DisplayName     string `json:"name"`
	Description     string `json:"description"`
	ReferenceSample string `json:"-"`
	Language        string `json:"language"`
	Gender          string `json:"gender"`
	Available       bool   `json:"available"`
}

// SummaryResult is the outcome of a summarize request
type SummaryResult struct {
	Success bool   `json:"success"`
	Summary string `json:"summary,omitempty"`
	Cached  bool   `json:"cached"`
	Error   string `json:"error,omitempty"`
}

// AudioResult is the outcome of a synthesize request
type AudioResult struct {
	Success   bool   `json:"success"`
	AudioFile string `json:"audio_file,omitempty"`
	Cached    bool   `json:"cached"`
	Error     string `json:"error,omitempty"`
}

// NewsResult is the outcome of a news listing request. Stale indicates a
// degraded response served from the previous snapshot after a failed refresh.
type NewsResult struct {
	Success       bool      `json:"success"`
	Articles      []Article `json:"articles"`
	LastUpdated   string    `json:"last_updated,omitempty"`
	TotalArticles int       `json:"total_articles"`
	Stale         bool      `json:"stale,omitempty"`
	Error         string    `json:"error,omitempty"`
}
