package handler

import (
	"careerfit/internal/model"
	"careerfit/internal/transport/rest/middleware"
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// ResultReader serves stored results
type ResultReader interface {
	GetBySession(ctx context.Context, sessionID string) (*model.AssessmentResult, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error)
	Standing(ctx context.Context, assessmentID, sessionID string) (*model.Standing, error)
}

// ResultHandler handles result endpoints
type ResultHandler struct {
	results ResultReader
}

// NewResultHandler creates a new result handler
func NewResultHandler(results ResultReader) *ResultHandler {
	return &ResultHandler{results: results}
}

// Get handles GET /v1/attempts/{sessionId}/result
// @Summary Get the stored result of an attempt
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.AssessmentResult
// @Failure 404 {object} map[string]string
// @Router /attempts/{sessionId}/result [get]
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.results.GetBySession(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Standing handles GET /v1/attempts/{sessionId}/standing
// @Summary Rank and percentile of an attempt within its assessment
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} model.Standing
// @Router /attempts/{sessionId}/standing [get]
func (h *ResultHandler) Standing(w http.ResponseWriter, r *http.Request) {
	assessmentID := middleware.GetAssessmentID(r.Context())
	st, err := h.results.Standing(r.Context(), assessmentID, mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ListByAssessment handles GET /v1/admin/assessments/{id}/results
func (h *ResultHandler) ListByAssessment(w http.ResponseWriter, r *http.Request) {
	results, err := h.results.ListByAssessment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
