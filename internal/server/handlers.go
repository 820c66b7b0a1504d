package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/bloom-classifier/internal/classifier"
	"github.com/jonathan/bloom-classifier/internal/db"
	"github.com/jonathan/bloom-classifier/internal/extraction"
	"github.com/jonathan/bloom-classifier/internal/pipeline"
	"github.com/jonathan/bloom-classifier/internal/rules"
)

// maxUploadBytes bounds the in-memory part of multipart parsing
const maxUploadBytes = 32 << 20

// handleClassify accepts a multipart document upload, runs the full pipeline,
// and returns the classified questions.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' form field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extraction.IsSupportedExtension(ext) {
		s.errorResponse(w, http.StatusBadRequest, "unsupported file format: "+ext)
		return
	}

	locale := r.FormValue("locale")
	if locale == "" {
		locale = s.locale
	}
	profile, ok := rules.ForLocale(locale)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "unknown locale: "+locale)
		return
	}

	tmp, err := os.CreateTemp("", "classify-*"+ext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}
	tmp.Close()

	gateway := classifier.NewGeminiGateway(s.apiKey, s.model, 0)
	defer gateway.Close()

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		FilePath:    tmp.Name(),
		FileName:    header.Filename,
		Gateway:     gateway,
		Profile:     profile,
		DatabaseURL: s.databaseURL,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Validation.Valid {
		s.jsonResponse(w, http.StatusUnprocessableEntity, result)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListRuns returns recent classification runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	filters := db.RunFilters{
		Locale: r.URL.Query().Get("locale"),
		Status: r.URL.Query().Get("status"),
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = n
	}

	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one run with its classified questions
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}

	questions, err := s.db.GetQuestions(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run":       run,
		"questions": questions,
	})
}

// handleDeleteRun deletes a run and its questions
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run history is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run id")
		return
	}

	if err := s.db.DeleteRun(r.Context(), runID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "run not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
