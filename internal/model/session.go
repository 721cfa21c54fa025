package model

import "time"

type SessionStatus string

const (
	SessionActive   SessionStatus = "active"
	SessionFinished SessionStatus = "finished"
)

// AttemptSession is the in-progress state of one assessment attempt
type AttemptSession struct {
	ID              string                           `json:"id"`
	AssessmentID    string                           `json:"assessmentId"`
	Status          SessionStatus                    `json:"status"`
	Answers         map[SectionKind]SectionAnswerMap `json:"answers"`
	Completed       map[SectionKind]bool             `json:"completed"` // Frozen sections
	Scores          map[SectionKind]SectionScore     `json:"scores,omitempty"`
	StartedAt       time.Time                        `json:"startedAt"`
	FinishedAt      *time.Time                       `json:"finishedAt,omitempty"`
	FinishClaimedAt *time.Time                       `json:"finishClaimedAt,omitempty"` // Held while one caller stores the result
}

// NewAttemptSession creates an empty active session
func NewAttemptSession(id, assessmentID string) *AttemptSession {
	return &AttemptSession{
		ID:           id,
		AssessmentID: assessmentID,
		Status:       SessionActive,
		Answers:      make(map[SectionKind]SectionAnswerMap),
		Completed:    make(map[SectionKind]bool),
		Scores:       make(map[SectionKind]SectionScore),
		StartedAt:    time.Now(),
	}
}

// SectionAnswers collects the session's answers into the scoring input
func (s *AttemptSession) SectionAnswers() SectionAnswers {
	return SectionAnswers{
		Psychometric: s.Answers[SectionPsychometric],
		Technical:    s.Answers[SectionTechnical],
		Wiscar:       s.Answers[SectionWiscar],
	}
}

// StartAttemptResponse is returned when an attempt begins
type StartAttemptResponse struct {
	SessionID    string      `json:"sessionId"`
	Token        string      `json:"token"`
	AssessmentID string      `json:"assessmentId"`
	Assessment   *Assessment `json:"assessment,omitempty"`
}

// AnswerSheet is the archived answer set of a finished attempt
type AnswerSheet struct {
	SessionID    string         `json:"sessionId" bson:"sessionId"`
	AssessmentID string         `json:"assessmentId" bson:"assessmentId"`
	Answers      SectionAnswers `json:"answers" bson:"answers"`
	SubmittedAt  time.Time      `json:"submittedAt" bson:"submittedAt"`
}
