package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository/dao"
)

var ErrCaseNotFound = dao.ErrCaseNotFound

type CaseDAO interface {
	Insert(ctx context.Context, c dao.Case) (dao.Case, error)
	FindByID(ctx context.Context, id uint) (dao.Case, error)
	FindAll(ctx context.Context, upcoming, relevantOnly bool, now time.Time) ([]dao.Case, error)
	UpdateAnalysis(ctx context.Context, id uint, relevanceReason string, isUnexpected bool) error
}

type CaseRepository struct {
	dao CaseDAO
}

func NewCaseRepository(dao CaseDAO) *CaseRepository {
	return &CaseRepository{
		dao: dao,
	}
}

func (r *CaseRepository) Create(ctx context.Context, c domain.Case) (domain.Case, error) {
	created, err := r.dao.Insert(ctx, caseDomainToDao(c))
	if err != nil {
		return domain.Case{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return caseDaoToDomain(created), nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id uint) (domain.CaseWithJudge, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.CaseWithJudge{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return caseWithJudgeDaoToDomain(found), nil
}

func (r *CaseRepository) FindAll(ctx context.Context, filters domain.CaseFilters, now time.Time) ([]domain.CaseWithJudge, error) {
	found, err := r.dao.FindAll(ctx, filters.Upcoming, filters.RelevantOnly, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	cases := make([]domain.CaseWithJudge, 0, len(found))
	for _, c := range found {
		cases = append(cases, caseWithJudgeDaoToDomain(c))
	}

	return cases, nil
}

func (r *CaseRepository) UpdateAnalysis(ctx context.Context, id uint, analysis domain.CaseAnalysis) error {
	if err := r.dao.UpdateAnalysis(ctx, id, analysis.RelevanceReason, analysis.IsUnexpected); err != nil {
		return fmt.Errorf("r.dao.UpdateAnalysis -> %w", err)
	}

	return nil
}

func caseDomainToDao(c domain.Case) dao.Case {
	return dao.Case{
		ID:                    c.ID,
		Title:                 c.Title,
		Description:           c.Description,
		JudgeID:               c.JudgeID,
		Date:                  c.Date,
		Location:              c.Location,
		IsPoliticallyRelevant: c.IsPoliticallyRelevant,
		RelevanceReason:       c.RelevanceReason,
		Outcome:               c.Outcome,
		IsUnexpected:          c.IsUnexpected,
		CreatedAt:             c.CreatedAt,
	}
}

func caseDaoToDomain(c dao.Case) domain.Case {
	return domain.Case{
		ID:                    c.ID,
		Title:                 c.Title,
		Description:           c.Description,
		JudgeID:               c.JudgeID,
		Date:                  c.Date,
		Location:              c.Location,
		IsPoliticallyRelevant: c.IsPoliticallyRelevant,
		RelevanceReason:       c.RelevanceReason,
		Outcome:               c.Outcome,
		IsUnexpected:          c.IsUnexpected,
		CreatedAt:             c.CreatedAt,
	}
}

func caseWithJudgeDaoToDomain(c dao.Case) domain.CaseWithJudge {
	return domain.CaseWithJudge{
		Case:  caseDaoToDomain(c),
		Judge: judgeDaoToDomain(c.Judge),
	}
}
