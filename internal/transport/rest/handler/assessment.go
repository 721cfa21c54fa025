package handler

import (
	"careerfit/internal/model"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// AssessmentCatalog manages assessment definitions
type AssessmentCatalog interface {
	Create(ctx context.Context, assessment *model.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	GetPublished(ctx context.Context, id string) (*model.Assessment, error)
	List(ctx context.Context, publishedOnly bool) ([]*model.Assessment, error)
	Update(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id string) error
}

// AssessmentHandler handles catalog endpoints
type AssessmentHandler struct {
	catalog AssessmentCatalog
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(catalog AssessmentCatalog) *AssessmentHandler {
	return &AssessmentHandler{catalog: catalog}
}

// ListPublished handles GET /v1/assessments
// @Summary List published assessments
// @Tags assessments
// @Produce json
// @Success 200 {array} model.Assessment
// @Router /assessments [get]
func (h *AssessmentHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// GetPublished handles GET /v1/assessments/{id}
// @Summary Get a published assessment
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} model.Assessment
// @Failure 404 {object} map[string]string
// @Router /assessments/{id} [get]
func (h *AssessmentHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.catalog.GetPublished(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

// Create handles POST /v1/admin/assessments
// @Summary Create an assessment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Assessment true "Assessment definition"
// @Success 201 {object} model.Assessment
// @Failure 400 {object} map[string]string
// @Router /admin/assessments [post]
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var assessment model.Assessment
	if err := json.NewDecoder(r.Body).Decode(&assessment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.catalog.Create(r.Context(), &assessment); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &assessment)
}

// List handles GET /v1/admin/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// Get handles GET /v1/admin/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.catalog.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

// Update handles PUT /v1/admin/assessments/{id}
func (h *AssessmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var assessment model.Assessment
	if err := json.NewDecoder(r.Body).Decode(&assessment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	assessment.ID = mux.Vars(r)["id"]

	if err := h.catalog.Update(r.Context(), &assessment); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &assessment)
}

// Delete handles DELETE /v1/admin/assessments/{id}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AssessmentHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	assessments, err := h.catalog.List(r.Context(), publishedOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessments)
}
