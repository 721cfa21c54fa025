package service

import (
	"careerfit/internal/cache"
	"careerfit/internal/logger"
	"careerfit/internal/model"
	"careerfit/internal/repository"
	"careerfit/internal/scoring"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// finishClaimTTL bounds how long a crashed Finish blocks the next one
const finishClaimTTL = 30 * time.Second

// AttemptService runs an attempt from start to scored result
type AttemptService struct {
	assessmentRepo repository.AssessmentRepo
	answerRepo     repository.AnswerRepo
	sessions       cache.SessionCache
	results        *ResultService
	authSvc        *AuthService
	broadcaster    Broadcaster
	now            func() time.Time
}

// NewAttemptService creates a new attempt service
func NewAttemptService(
	assessmentRepo repository.AssessmentRepo,
	answerRepo repository.AnswerRepo,
	sessions cache.SessionCache,
	results *ResultService,
	authSvc *AuthService,
) *AttemptService {
	return &AttemptService{
		assessmentRepo: assessmentRepo,
		answerRepo:     answerRepo,
		sessions:       sessions,
		results:        results,
		authSvc:        authSvc,
		now:            time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AttemptService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start opens a new attempt on a published assessment
func (s *AttemptService) Start(ctx context.Context, assessmentID string) (*model.StartAttemptResponse, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil || !assessment.Published {
		return nil, ErrAssessmentNotFound
	}

	session := model.NewAttemptSession(uuid.New().String(), assessmentID)
	session.StartedAt = s.now()
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.authSvc.GenerateAttemptToken(session.ID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Infof("[Attempt] started %s on %s", session.ID, assessmentID)
	return &model.StartAttemptResponse{
		SessionID:    session.ID,
		Token:        token,
		AssessmentID: assessmentID,
		Assessment:   assessment,
	}, nil
}

// Get returns the current state of an attempt
func (s *AttemptService) Get(ctx context.Context, sessionID string) (*model.AttemptSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// RecordAnswer stores or overwrites one answer of an open section
func (s *AttemptService) RecordAnswer(ctx context.Context, sessionID string, section model.SectionKind, questionID string, answer model.Answer) error {
	if !section.Valid() {
		return ErrUnknownSection
	}
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.checkQuestion(ctx, session.AssessmentID, section, questionID); err != nil {
		return err
	}

	updated, err := s.sessions.Update(ctx, sessionID, func(sess *model.AttemptSession) error {
		if sess.Status == model.SessionFinished {
			return ErrAttemptFinished
		}
		c := scoring.RestoreCollector(section, sess.Answers[section], sess.Completed[section])
		if err := c.Record(questionID, answer); err != nil {
			return err
		}
		sess.Answers[section] = c.Current()
		return nil
	})
	if err != nil {
		return err
	}
	if updated == nil {
		return ErrSessionNotFound
	}
	return nil
}

// CompleteSection freezes a section and scores it. Completing an already
// completed section returns the same score.
func (s *AttemptService) CompleteSection(ctx context.Context, sessionID string, section model.SectionKind) (*model.SectionScore, error) {
	if !section.Valid() {
		return nil, ErrUnknownSection
	}

	var score model.SectionScore
	updated, err := s.sessions.Update(ctx, sessionID, func(sess *model.AttemptSession) error {
		if sess.Status == model.SessionFinished && !sess.Completed[section] {
			return ErrAttemptFinished
		}
		c := scoring.RestoreCollector(section, sess.Answers[section], sess.Completed[section])
		answers := c.Freeze()
		score = scoring.ScoreSectionWithCategories(section, answers)
		sess.Answers[section] = answers
		sess.Completed[section] = true
		sess.Scores[section] = score
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrSessionNotFound
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, EventSectionScored, map[string]interface{}{
			"section": section,
			"score":   score,
		})
	}
	return &score, nil
}

// Finish freezes every section, scores the attempt and stores the result.
// Finishing twice returns the stored result. While another call is still
// storing it, ErrFinishInProgress is returned.
func (s *AttemptService) Finish(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	current, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.Status == model.SessionFinished {
		stored, err := s.results.lookup(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return stored, nil
		}
	}

	rescore := false
	session, err := s.sessions.Update(ctx, sessionID, func(sess *model.AttemptSession) error {
		now := s.now()
		if sess.Status == model.SessionFinished {
			if sess.FinishClaimedAt != nil && now.Sub(*sess.FinishClaimedAt) < finishClaimTTL {
				return ErrFinishInProgress
			}
			rescore = true
		} else {
			for _, kind := range model.SectionKinds {
				answers := scoring.RestoreCollector(kind, sess.Answers[kind], true).Current()
				sess.Answers[kind] = answers
				sess.Completed[kind] = true
				sess.Scores[kind] = scoring.ScoreSectionWithCategories(kind, answers)
			}
			sess.Status = model.SessionFinished
			sess.FinishedAt = &now
		}
		sess.FinishClaimedAt = &now
		return nil
	})
	if errors.Is(err, ErrFinishInProgress) {
		// The claim holder may have stored the result since the first lookup
		if stored, lookupErr := s.results.lookup(ctx, sessionID); lookupErr == nil && stored != nil {
			return stored, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if rescore {
		// An earlier finish froze the session but never reached the sink
		logger.Warnf("[Attempt] %s finished without a stored result, rescoring", sessionID)
	}

	result := scoring.Score(session.SectionAnswers())
	result.AssessmentID = session.AssessmentID
	result.SessionID = session.ID
	result.CompletedAt = session.FinishedAt

	if err := s.results.Store(ctx, &result); err != nil {
		s.releaseFinish(ctx, sessionID)
		return nil, err
	}

	sheet := &model.AnswerSheet{
		SessionID:    session.ID,
		AssessmentID: session.AssessmentID,
		Answers:      session.SectionAnswers(),
	}
	if session.FinishedAt != nil {
		sheet.SubmittedAt = *session.FinishedAt
	}
	if err := s.answerRepo.SaveSheet(ctx, sheet); err != nil {
		logger.Warnf("[Attempt] answer archive failed for %s: %v", sessionID, err)
	}

	log := logger.With().
		Str("sessionId", session.ID).
		Str("assessmentId", session.AssessmentID).
		Logger()
	log.Info().
		Int("overallScore", result.OverallScore).
		Str("recommendation", string(result.Recommendation)).
		Msg("attempt finished")

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, EventResultReady, &result)
		s.broadcaster.DisconnectSession(sessionID)
	}
	return &result, nil
}

// releaseFinish drops the finish claim so the next Finish can retry at once
func (s *AttemptService) releaseFinish(ctx context.Context, sessionID string) {
	_, err := s.sessions.Update(ctx, sessionID, func(sess *model.AttemptSession) error {
		sess.FinishClaimedAt = nil
		return nil
	})
	if err != nil {
		logger.Warnf("[Attempt] failed to release finish claim of %s: %v", sessionID, err)
	}
}

func (s *AttemptService) checkQuestion(ctx context.Context, assessmentID string, section model.SectionKind, questionID string) error {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil {
		return ErrAssessmentNotFound
	}
	sec := assessment.Section(section)
	if sec == nil {
		return ErrUnknownSection
	}
	if !sec.HasQuestion(questionID) {
		return ErrUnknownQuestion
	}
	return nil
}
