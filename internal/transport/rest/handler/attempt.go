package handler

import (
	"careerfit/internal/model"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// AttemptRunner drives an attempt through its sections
type AttemptRunner interface {
	Start(ctx context.Context, assessmentID string) (*model.StartAttemptResponse, error)
	Get(ctx context.Context, sessionID string) (*model.AttemptSession, error)
	RecordAnswer(ctx context.Context, sessionID string, section model.SectionKind, questionID string, answer model.Answer) error
	CompleteSection(ctx context.Context, sessionID string, section model.SectionKind) (*model.SectionScore, error)
	Finish(ctx context.Context, sessionID string) (*model.AssessmentResult, error)
}

// AttemptHandler handles attempt endpoints
type AttemptHandler struct {
	attempts AttemptRunner
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attempts AttemptRunner) *AttemptHandler {
	return &AttemptHandler{attempts: attempts}
}

// RecordAnswerRequest is the body of an answer upsert
type RecordAnswerRequest struct {
	Value model.Answer `json:"value"`
}

// Start handles POST /v1/assessments/{id}/attempts
// @Summary Start an attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 201 {object} model.StartAttemptResponse
// @Failure 404 {object} map[string]string
// @Router /assessments/{id}/attempts [post]
func (h *AttemptHandler) Start(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attempts.Start(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /v1/attempts/{sessionId}
func (h *AttemptHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.attempts.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// RecordAnswer handles PUT /v1/attempts/{sessionId}/sections/{section}/answers/{questionId}
// @Summary Record or overwrite one answer
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param section path string true "psychometric, technical or wiscar"
// @Param questionId path string true "Question ID"
// @Param body body RecordAnswerRequest true "Answer value of any JSON type"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /attempts/{sessionId}/sections/{section}/answers/{questionId} [put]
func (h *AttemptHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.attempts.RecordAnswer(r.Context(), vars["sessionId"], model.SectionKind(vars["section"]), vars["questionId"], req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteSection handles POST /v1/attempts/{sessionId}/sections/{section}/complete
func (h *AttemptHandler) CompleteSection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	score, err := h.attempts.CompleteSection(r.Context(), vars["sessionId"], model.SectionKind(vars["section"]))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"section": vars["section"],
		"score":   score,
	})
}

// Finish handles POST /v1/attempts/{sessionId}/finish
// @Summary Finish an attempt and score it
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.AssessmentResult
// @Router /attempts/{sessionId}/finish [post]
func (h *AttemptHandler) Finish(w http.ResponseWriter, r *http.Request) {
	result, err := h.attempts.Finish(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
