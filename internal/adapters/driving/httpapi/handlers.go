package httpapi

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// headerWarning carries recovered export problems, one header per warning.
const headerWarning = "X-Report-Warning"

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleDimensions(w http.ResponseWriter, _ *http.Request) {
	dims := domain.AllDimensions()
	out := make([]dimensionResponse, 0, len(dims))

	for _, d := range dims {
		defs, err := s.ports.Report.LevelDefinitions(d)
		if err != nil {
			writeError(w, err)
			return
		}

		item := dimensionResponse{
			Dimension: d.String(),
			Name:      d.DisplayName(),
			Levels:    make([]levelResponse, len(defs)),
		}
		for i, def := range defs {
			item.Levels[i] = levelResponse{
				Level:       int(def.Level),
				Option:      def.Level.Option(),
				Label:       def.Label.String(),
				Description: def.Description,
			}
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	a, err := decodeAssessment(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.ports.Report.Summary(a)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSummaryResponse(summary))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	a, err := decodeAssessment(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	opts, err := exportOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	artifact, err := s.ports.Report.Export(r.Context(), a, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeArtifact(w, artifact)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.ports.Assessment.Start(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/sessions/"+session.ID)
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.ports.Assessment.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (s *Server) handleDiscardSession(w http.ResponseWriter, r *http.Request) {
	if err := s.ports.Assessment.Discard(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	d, err := domain.ParseDimension(chi.URLParam(r, "dimension"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	session, err := s.ports.Assessment.Answer(r.Context(), chi.URLParam(r, "id"), d, domain.Level(req.Level))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	session, err := s.ports.Assessment.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := s.ports.Report.Summary(session.Assessment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSummaryResponse(summary))
}

// handleSessionReport exports a session and then discards it.
func (s *Server) handleSessionReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := s.ports.Assessment.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	opts, err := exportOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	artifact, err := s.ports.Report.Export(r.Context(), session.Assessment, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ports.Assessment.Discard(r.Context(), id); err != nil {
		logger.Warn("Discard session %s: %v", id, err)
	}
	writeArtifact(w, artifact)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func decodeAssessment(w http.ResponseWriter, r *http.Request) (*domain.Assessment, error) {
	var req assessmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return nil, err
	}
	return req.assessment()
}

// exportOptions reads backend, title and glossary from the query string.
func exportOptions(r *http.Request) (domain.ExportOptions, error) {
	q := r.URL.Query()
	opts := domain.ExportOptions{
		Backend: q.Get("backend"),
		Title:   q.Get("title"),
	}
	if raw := q.Get("glossary"); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("%w: glossary must be true or false", domain.ErrInvalidInput)
		}
		opts = opts.WithGlossary(on)
	}
	return opts, nil
}

// writeArtifact sends a document as a named download.
func writeArtifact(w http.ResponseWriter, artifact *domain.Artifact) {
	h := w.Header()
	h.Set("Content-Type", artifact.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	h.Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	for _, warning := range artifact.Warnings {
		h.Add(headerWarning, warning)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		logger.Warn("write report: %v", err)
	}
}
