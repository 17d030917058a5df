package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"studygen/internal/app"
	"studygen/internal/httputil"
	"studygen/internal/markdown"
	"studygen/internal/pdfgen"
	"studygen/internal/pipeline"
	"studygen/internal/quiz"
	"studygen/internal/session"
	"studygen/internal/transcript"
)

type server struct {
	deps     app.Deps
	validate *validator.Validate
}

func newServer(deps app.Deps) *server {
	return &server{deps: deps, validate: validator.New()}
}

func (s *server) router() *chi.Mux {
	r := httputil.NewRouter(s.deps.Log)
	r.Post("/api/study-sets", s.createStudySet)
	r.Get("/api/study-sets/{id}", s.getStudySet)
	r.Post("/api/study-sets/{id}/score", s.scoreStudySet)
	r.Get("/api/study-sets/{id}/notes.pdf", s.notesPDF)
	r.Get("/api/study-sets/{id}/quiz.pdf", s.quizPDF)
	r.Get("/healthz", httputil.HealthHandler())
	return r
}

type createRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

type scoreRequest struct {
	Answers map[int]string `json:"answers" validate:"required,dive,oneof=A B C D a b c d"`
}

type questionResult struct {
	Index   int    `json:"index"`
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// createStudySet accepts a transcript (multipart file upload or JSON
// body), runs the generation pipeline, and stores the result for the
// session. A pipeline failure reports which stage failed; no partial
// study set is ever stored or returned.
func (s *server) createStudySet(w http.ResponseWriter, r *http.Request) {
	text, err := s.readTranscript(r)
	if err != nil {
		httputil.Fail(s.deps.Log, w, err.Error(), err, http.StatusBadRequest)
		return
	}

	result, err := s.deps.Pipeline.Run(r.Context(), text)
	if err != nil {
		var stageErr *pipeline.StageError
		switch {
		case errors.Is(err, pipeline.ErrEmptyTranscript):
			httputil.Fail(s.deps.Log, w, "transcript is empty", err, http.StatusBadRequest)
		case errors.As(err, &stageErr):
			httputil.Fail(s.deps.Log, w, stageErr.Error(), err, http.StatusBadGateway)
		default:
			httputil.Fail(s.deps.Log, w, "generation failed", err, http.StatusInternalServerError)
		}
		return
	}

	set := session.StudySet{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Topic:       result.Topic,
		KeyConcepts: result.KeyConcepts,
		StudyNotes:  result.StudyNotes,
		Questions:   result.Questions,
	}
	s.deps.Sessions.Put(set)

	httputil.WriteJSON(w, http.StatusCreated, set)
}

// readTranscript pulls the transcript text out of the request, from either
// a multipart file field named "transcript" or a JSON body.
func (s *server) readTranscript(r *http.Request) (string, error) {
	maxSize := s.deps.Config.MaxUploadSize
	if r.ContentLength > maxSize {
		return "", fmt.Errorf("request too large (max %d bytes)", maxSize)
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("transcript")
		if err != nil {
			return "", fmt.Errorf("transcript file is required")
		}
		defer file.Close()

		if header.Size > maxSize {
			return "", fmt.Errorf("file too large (max %d bytes)", maxSize)
		}
		content, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read upload: %w", err)
		}
		return transcript.FromUpload(header.Filename, content)
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", fmt.Errorf("invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("transcript is required")
	}
	return req.Transcript, nil
}

func (s *server) getStudySet(w http.ResponseWriter, r *http.Request) {
	set, ok := s.lookup(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, set)
}

// scoreStudySet grades submitted answers against the stored quiz.
// Unanswered questions count as wrong, matching the quiz UI behavior.
func (s *server) scoreStudySet(w http.ResponseWriter, r *http.Request) {
	set, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(s.deps.Log, w, "invalid request body", err, http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		httputil.Fail(s.deps.Log, w, "answers must be letters A-D keyed by question index", err, http.StatusBadRequest)
		return
	}

	results := make([]questionResult, len(set.Questions))
	for i, q := range set.Questions {
		results[i] = questionResult{
			Index:   i,
			Correct: strings.EqualFold(strings.TrimSpace(req.Answers[i]), q.Answer),
			Answer:  q.Answer,
		}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"score":   quiz.Score(set.Questions, req.Answers),
		"total":   len(set.Questions),
		"results": results,
	})
}

func (s *server) notesPDF(w http.ResponseWriter, r *http.Request) {
	set, ok := s.lookup(w, r)
	if !ok {
		return
	}
	data, err := pdfgen.Render(markdown.Strip(set.StudyNotes), "Study Notes")
	if err != nil {
		httputil.Fail(s.deps.Log, w, "failed to render notes", err, http.StatusInternalServerError)
		return
	}
	httputil.WritePDF(w, "study_notes.pdf", data)
}

func (s *server) quizPDF(w http.ResponseWriter, r *http.Request) {
	set, ok := s.lookup(w, r)
	if !ok {
		return
	}
	data, err := pdfgen.Render(quiz.FormatText(set.Questions), "Quiz")
	if err != nil {
		httputil.Fail(s.deps.Log, w, "failed to render quiz", err, http.StatusInternalServerError)
		return
	}
	httputil.WritePDF(w, "generated_quiz.pdf", data)
}

// lookup resolves the study set named in the URL, writing the error
// response itself when the id is invalid or unknown.
func (s *server) lookup(w http.ResponseWriter, r *http.Request) (session.StudySet, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Fail(s.deps.Log, w, "invalid study set id", err, http.StatusBadRequest)
		return session.StudySet{}, false
	}
	set, ok := s.deps.Sessions.Get(id)
	if !ok {
		httputil.Fail(s.deps.Log, w, "study set not found", nil, http.StatusNotFound)
		return session.StudySet{}, false
	}
	return set, true
}
