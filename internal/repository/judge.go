package repository

import (
	"context"
	"fmt"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository/dao"
)

var ErrJudgeNotFound = dao.ErrJudgeNotFound

type JudgeDAO interface {
	Insert(ctx context.Context, judge dao.Judge) (dao.Judge, error)
	FindByID(ctx context.Context, id uint) (dao.Judge, error)
	FindAll(ctx context.Context, search string) ([]dao.Judge, error)
}

type JudgeRepository struct {
	dao JudgeDAO
}

func NewJudgeRepository(dao JudgeDAO) *JudgeRepository {
	return &JudgeRepository{
		dao: dao,
	}
}

func (r *JudgeRepository) Create(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	created, err := r.dao.Insert(ctx, judgeDomainToDao(judge))
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return judgeDaoToDomain(created), nil
}

func (r *JudgeRepository) FindByID(ctx context.Context, id uint) (domain.Judge, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return judgeDaoToDomain(found), nil
}

func (r *JudgeRepository) FindAll(ctx context.Context, search string) ([]domain.Judge, error) {
	found, err := r.dao.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	judges := make([]domain.Judge, 0, len(found))
	for _, j := range found {
		judges = append(judges, judgeDaoToDomain(j))
	}

	return judges, nil
}

func judgeDomainToDao(j domain.Judge) dao.Judge {
	return dao.Judge{
		ID:          j.ID,
		Name:        j.Name,
		Court:       j.Court,
		Location:    j.Location,
		ImageURL:    j.ImageURL,
		Rating:      j.Rating,
		Bias:        j.Bias,
		AppointedBy: j.AppointedBy,
		Bio:         j.Bio,
	}
}

func judgeDaoToDomain(j dao.Judge) domain.Judge {
	return domain.Judge{
		ID:          j.ID,
		Name:        j.Name,
		Court:       j.Court,
		Location:    j.Location,
		ImageURL:    j.ImageURL,
		Rating:      j.Rating,
		Bias:        j.Bias,
		AppointedBy: j.AppointedBy,
		Bio:         j.Bio,
	}
}
