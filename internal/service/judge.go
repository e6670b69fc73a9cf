package service

import (
	"context"
	"fmt"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository"
)

var ErrJudgeNotFound = repository.ErrJudgeNotFound

type JudgeRepository interface {
	Create(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	FindByID(ctx context.Context, id uint) (domain.Judge, error)
	FindAll(ctx context.Context, search string) ([]domain.Judge, error)
}

type JudgeService struct {
	repo JudgeRepository
}

func NewJudgeService(repo JudgeRepository) *JudgeService {
	return &JudgeService{
		repo: repo,
	}
}

// ListJudges returns judges ordered by rating descending. A non-empty search
// term filters on name or court, case-insensitive substring.
func (s *JudgeService) ListJudges(ctx context.Context, search string) ([]domain.Judge, error) {
	judges, err := s.repo.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return judges, nil
}

func (s *JudgeService) GetJudge(ctx context.Context, id uint) (domain.Judge, error) {
	judge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return judge, nil
}

// CreateJudge persists a new judge. The rating is clamped into [0,100] here as
// well as validated at the API boundary, so non-HTTP callers cannot store an
// out-of-range value.
func (s *JudgeService) CreateJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	judge.ClampRating()

	created, err := s.repo.Create(ctx, judge)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
