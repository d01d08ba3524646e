package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// summarizeRequest is the POST /api/summarize body
type summarizeRequest struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// synthesizeRequest is the POST /api/synthesize body
type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// cloneVoiceRequest is the POST /api/voices/clone body
type cloneVoiceRequest struct {
	ReferencePath string `json:"reference_path"`
	VoiceID       string `json:"voice_id"`
	Description   string `json:"description,omitempty"`
}

// newsHandler returns the current news snapshot, optionally scoped to
// sources or a category and optionally forcing a refresh
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	var sources []string
	if raw := r.URL.Query().Get("sources"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sources = append(sources, name)
			}
		}
	}
	category := r.URL.Query().Get("category")
	refresh := r.URL.Query().Get("refresh") == "true" || r.URL.Query().Get("refresh") == "1"

	result := s.news.GetNews(r.Context(), sources, category, refresh)
	if !result.Success {
		RenderJSON(w, r, http.StatusBadGateway, result)
		return
	}
	RenderJSON(w, r, http.StatusOK, result)
}

// summarizeHandler produces a summary for the posted text
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		RenderError(w, r, fmt.Errorf("text is required"), http.StatusBadRequest)
		return
	}

	RenderJSON(w, r, http.StatusOK, s.news.Summarize(r.Context(), req.Text, req.URL))
}

// synthesizeHandler produces narrated audio for the posted text
func (s *Server) synthesizeHandler(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		RenderError(w, r, fmt.Errorf("text is required"), http.StatusBadRequest)
		return
	}

	RenderJSON(w, r, http.StatusOK, s.news.Synthesize(r.Context(), req.Text, req.Voice))
}

// voicesHandler returns the available voice catalog
func (s *Server) voicesHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"voices": s.news.Voices()})
}

// cloneVoiceHandler registers a new voice from a reference sample on disk
func (s *Server) cloneVoiceHandler(w http.ResponseWriter, r *http.Request) {
	var req cloneVoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.ReferencePath == "" || req.VoiceID == "" {
		RenderError(w, r, fmt.Errorf("reference_path and voice_id are required"), http.StatusBadRequest)
		return
	}
	if !validVoiceID(req.VoiceID) {
		RenderError(w, r, fmt.Errorf("invalid voice_id"), http.StatusBadRequest)
		return
	}

	if err := s.news.CloneVoice(req.ReferencePath, req.VoiceID, req.Description); err != nil {
		RenderError(w, r, fmt.Errorf("voice cloning failed: %w", err), http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"success": true, "voice_id": req.VoiceID})
}

// sourcesHandler returns the configured source catalog
func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"sources": s.news.Sources()})
}

// testSourceHandler probes a single configured source feed
func (s *Server) testSourceHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	status := s.news.TestSource(r.Context(), name)
	if !status.Success {
		RenderJSON(w, r, http.StatusBadGateway, status)
		return
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// audioHandler serves a cached audio file by name. Only plain wav names
// are accepted, anything with path elements is rejected.
func (s *Server) audioHandler(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if !validAudioName(filename) {
		RenderError(w, r, fmt.Errorf("invalid audio file name"), http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.audioDir, filename)
	if _, err := os.Stat(path); err != nil {
		RenderError(w, r, fmt.Errorf("audio file not found"), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	http.ServeFile(w, r, path)
}

// validAudioName accepts bare wav file names only
func validAudioName(name string) bool {
	if name == "" || !strings.HasSuffix(name, ".wav") {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return false
	}
	return true
}

// validVoiceID restricts voice IDs to names safe to use as file names
func validVoiceID(id string) bool {
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return id != ""
}
