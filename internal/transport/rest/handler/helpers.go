package handler

import (
	"careerfit/internal/cache"
	"careerfit/internal/logger"
	"careerfit/internal/service"
	"encoding/json"
	"errors"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service sentinels to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrResultNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSectionFrozen),
		errors.Is(err, service.ErrAttemptFinished),
		errors.Is(err, service.ErrFinishInProgress),
		errors.Is(err, cache.ErrSessionConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownSection),
		errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrInvalidAssessment):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Errorf("[HTTP] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
