package repository

import (
	"context"
	"fmt"

	"github.com/courtwatchhq/courtwatch-api/internal/domain"
	"github.com/courtwatchhq/courtwatch-api/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrUserNotFound

type UserDAO interface {
	FindByID(ctx context.Context, id string) (dao.User, error)
}

// UserRepository reads the identity provider's user records. It never writes;
// the provider owns that lifecycle.
type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return domain.User{
		ID:              found.ID,
		FirstName:       found.FirstName,
		LastName:        found.LastName,
		ProfileImageURL: found.ProfileImageURL,
	}, nil
}
