package service

import (
	"errors"

	"careerfit/internal/scoring"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSessionNotFound    = errors.New("attempt session not found")
	ErrResultNotFound     = errors.New("result not found")
	ErrUnknownSection     = errors.New("unknown section")
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrSectionFrozen      = scoring.ErrSectionFrozen
	ErrAttemptFinished    = errors.New("attempt already finished")
	ErrFinishInProgress   = errors.New("attempt is being finished")
	ErrInvalidAssessment  = errors.New("invalid assessment")
)
