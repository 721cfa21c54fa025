package service

import (
	"careerfit/internal/cache"
	"careerfit/internal/logger"
	"careerfit/internal/model"
	"careerfit/internal/repository"
	"context"
	"fmt"
)

// ResultService stores finished reports and serves them back
type ResultService struct {
	resultRepo     repository.ResultRepo
	assessmentRepo repository.AssessmentRepo
	resultCache    cache.ResultCache
	leaderboard    cache.LeaderboardCache
}

// NewResultService creates a new result service
func NewResultService(
	resultRepo repository.ResultRepo,
	assessmentRepo repository.AssessmentRepo,
	resultCache cache.ResultCache,
	leaderboard cache.LeaderboardCache,
) *ResultService {
	return &ResultService{
		resultRepo:     resultRepo,
		assessmentRepo: assessmentRepo,
		resultCache:    resultCache,
		leaderboard:    leaderboard,
	}
}

// Store persists a result to the sink, then warms the cache and the score
// distribution. Only the sink write is fatal.
func (s *ResultService) Store(ctx context.Context, result *model.AssessmentResult) error {
	if err := s.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if err := s.resultCache.Set(ctx, result); err != nil {
		logger.Warnf("[Result] cache set failed for %s: %v", result.SessionID, err)
	}
	if err := s.leaderboard.Record(ctx, result.AssessmentID, result.SessionID, result.OverallScore); err != nil {
		logger.Warnf("[Result] score distribution update failed for %s: %v", result.SessionID, err)
	}
	return nil
}

// GetBySession returns the stored result of an attempt
func (s *ResultService) GetBySession(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	result, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	return result, nil
}

// ListByAssessment returns every stored result of an assessment, newest first
func (s *ResultService) ListByAssessment(ctx context.Context, assessmentID string) ([]*model.AssessmentResult, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return s.resultRepo.ListByAssessment(ctx, assessmentID)
}

// Standing places an attempt's overall score among all results of its assessment
func (s *ResultService) Standing(ctx context.Context, assessmentID, sessionID string) (*model.Standing, error) {
	st, err := s.leaderboard.Standing(ctx, assessmentID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read score distribution: %w", err)
	}
	if st == nil {
		return nil, ErrResultNotFound
	}
	return st, nil
}

// lookup reads through the cache and back-fills it on a sink hit
func (s *ResultService) lookup(ctx context.Context, sessionID string) (*model.AssessmentResult, error) {
	cached, err := s.resultCache.Get(ctx, sessionID)
	if err != nil {
		logger.Warnf("[Result] cache get failed for %s: %v", sessionID, err)
	}
	if cached != nil {
		return cached, nil
	}

	result, err := s.resultRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	if result == nil {
		return nil, nil
	}
	if err := s.resultCache.Set(ctx, result); err != nil {
		logger.Warnf("[Result] cache back-fill failed for %s: %v", sessionID, err)
	}
	return result, nil
}
