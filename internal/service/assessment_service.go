package service

import (
	"careerfit/internal/cache"
	"careerfit/internal/model"
	"careerfit/internal/repository"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// AssessmentService handles the assessment catalog
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	leaderboard    cache.LeaderboardCache
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(assessmentRepo repository.AssessmentRepo, leaderboard cache.LeaderboardCache) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		leaderboard:    leaderboard,
	}
}

// Create validates and stores a new assessment
func (s *AssessmentService) Create(ctx context.Context, assessment *model.Assessment) (string, error) {
	if err := Normalize(assessment); err != nil {
		return "", err
	}
	existing, err := s.assessmentRepo.GetBySlug(ctx, assessment.Slug)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("%w: slug %q already in use", ErrInvalidAssessment, assessment.Slug)
	}
	return s.assessmentRepo.Create(ctx, assessment)
}

// GetByID retrieves any assessment, published or not
func (s *AssessmentService) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// GetPublished retrieves an assessment visible to participants
func (s *AssessmentService) GetPublished(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !assessment.Published {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// List returns the catalog, newest first
func (s *AssessmentService) List(ctx context.Context, publishedOnly bool) ([]*model.Assessment, error) {
	return s.assessmentRepo.List(ctx, publishedOnly)
}

// Update replaces an existing assessment
func (s *AssessmentService) Update(ctx context.Context, assessment *model.Assessment) error {
	existing, err := s.GetByID(ctx, assessment.ID)
	if err != nil {
		return err
	}
	if err := Normalize(assessment); err != nil {
		return err
	}
	if assessment.Slug != existing.Slug {
		other, err := s.assessmentRepo.GetBySlug(ctx, assessment.Slug)
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if other != nil && other.ID != assessment.ID {
			return fmt.Errorf("%w: slug %q already in use", ErrInvalidAssessment, assessment.Slug)
		}
	}
	assessment.CreatedAt = existing.CreatedAt
	return s.assessmentRepo.Update(ctx, assessment)
}

// Delete removes an assessment and its score distribution. The distribution
// goes first so a failed delete can be retried.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.leaderboard.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to clear score distribution: %w", err)
	}
	return s.assessmentRepo.Delete(ctx, id)
}

// Normalize validates an assessment definition, derives a missing slug
// and assigns ids to questions that have none.
func Normalize(a *model.Assessment) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidAssessment)
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if len(a.Sections) == 0 {
		return fmt.Errorf("%w: at least one section is required", ErrInvalidAssessment)
	}

	seen := make(map[model.SectionKind]bool)
	for i := range a.Sections {
		sec := &a.Sections[i]
		if !sec.Type.Valid() {
			return fmt.Errorf("%w: section %d has unknown type %q", ErrInvalidAssessment, i, sec.Type)
		}
		if seen[sec.Type] {
			return fmt.Errorf("%w: duplicate %s section", ErrInvalidAssessment, sec.Type)
		}
		seen[sec.Type] = true

		ids := make(map[string]bool)
		for j := range sec.Questions {
			q := &sec.Questions[j]
			if !q.Type.Valid() {
				return fmt.Errorf("%w: %s question %d has unknown type %q", ErrInvalidAssessment, sec.Type, j, q.Type)
			}
			if q.ID == "" {
				q.ID = uuid.New().String()
			}
			if ids[q.ID] {
				return fmt.Errorf("%w: duplicate question id %q in %s", ErrInvalidAssessment, q.ID, sec.Type)
			}
			ids[q.ID] = true
		}
	}
	return nil
}

// Slugify lowercases s and joins its words with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
