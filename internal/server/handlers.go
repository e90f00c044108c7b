package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/skill-search/internal/fetch"
	"github.com/jonathan/skill-search/internal/types"
)

// handleParseJob parses a job posting into requirements and soft skills.
// The posting comes either inline as text or as a URL to fetch.
func (s *Server) handleParseJob(w http.ResponseWriter, r *http.Request) {
	var req types.ParseJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "either text or url must be provided")
		return
	}

	title := req.Title
	text := req.Text
	if req.URL != "" {
		posting, err := fetch.JobPosting(r.Context(), req.URL, nil)
		if err != nil {
			log.Printf("Posting fetch failed: %v", err)
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting")
			return
		}
		text = posting.Text
		if title == "" {
			title = posting.Title
		}
	}

	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "job posting text is empty")
		return
	}

	parsed, err := s.parser.ParseJob(r.Context(), title, text)
	if err != nil {
		log.Printf("Job parse failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "job parsing failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleParseResume parses resume text into skills, sections, and a profile.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil || strings.TrimSpace(req.Text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume text is required")
		return
	}

	parsed, err := s.parser.ParseResume(r.Context(), req.Text)
	if err != nil {
		log.Printf("Resume parse failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "resume parsing failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, parsed)
}
