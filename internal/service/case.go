package service

import (
	"context"
	"fmt"
	"time"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository"
)

var ErrCaseNotFound = repository.ErrCaseNotFound

type CaseRepository interface {
	Create(ctx context.Context, c domain.Case) (domain.Case, error)
	FindByID(ctx context.Context, id uint) (domain.CaseWithJudge, error)
	FindAll(ctx context.Context, filters domain.CaseFilters, now time.Time) ([]domain.CaseWithJudge, error)
	UpdateAnalysis(ctx context.Context, id uint, analysis domain.CaseAnalysis) error
}

// CaseAnalyzer produces the political-relevance analysis for a case. The real
// implementation talks to an external model service; tests stub it.
type CaseAnalyzer interface {
	Analyze(ctx context.Context, c domain.Case) (domain.CaseAnalysis, error)
}

type CaseService struct {
	repo     CaseRepository
	analyzer CaseAnalyzer
	now      func() time.Time
}

func NewCaseService(repo CaseRepository, analyzer CaseAnalyzer) *CaseService {
	return &CaseService{
		repo:     repo,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// ListCases returns cases joined with their judge, date ascending.
func (s *CaseService) ListCases(ctx context.Context, filters domain.CaseFilters) ([]domain.CaseWithJudge, error) {
	cases, err := s.repo.FindAll(ctx, filters, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return cases, nil
}

func (s *CaseService) GetCase(ctx context.Context, id uint) (domain.CaseWithJudge, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.CaseWithJudge{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return c, nil
}

// CreateCase persists a new case. The judge reference is checked by the store's
// referential integrity; a missing judge surfaces as ErrJudgeNotFound.
func (s *CaseService) CreateCase(ctx context.Context, c domain.Case) (domain.Case, error) {
	c.CreatedAt = s.now()

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Case{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// AnalyzeCase runs the relevance analyzer on a case and persists the result,
// returning the updated case with its judge.
func (s *CaseService) AnalyzeCase(ctx context.Context, id uint) (domain.CaseWithJudge, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.CaseWithJudge{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	analysis, err := s.analyzer.Analyze(ctx, c.Case)
	if err != nil {
		return domain.CaseWithJudge{}, fmt.Errorf("s.analyzer.Analyze -> %w", err)
	}

	if err = s.repo.UpdateAnalysis(ctx, id, analysis); err != nil {
		return domain.CaseWithJudge{}, fmt.Errorf("s.repo.UpdateAnalysis -> %w", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.CaseWithJudge{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return updated, nil
}
