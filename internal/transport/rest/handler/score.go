package handler

import (
	"careerfit/internal/model"
	"careerfit/internal/scoring"
	"encoding/json"
	"errors"
	"net/http"
)

// MaxScoreBody caps the request body of the public score endpoint
const MaxScoreBody = 1 << 20

// ScoreHandler exposes the stateless scoring boundary
type ScoreHandler struct{}

// NewScoreHandler creates a new score handler
func NewScoreHandler() *ScoreHandler {
	return &ScoreHandler{}
}

// Score handles POST /v1/score
// @Summary Score a full answer set without storing it
// @Tags scoring
// @Accept json
// @Produce json
// @Param body body model.SectionAnswers true "Answers by section"
// @Success 200 {object} model.AssessmentResult
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /score [post]
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxScoreBody)

	var answers model.SectionAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, scoring.Score(answers))
}
