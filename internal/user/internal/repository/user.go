package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"github.com/pofo-ai/pofo/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	// UpdatePortfolio 대상이 없으면 ErrUserNotFound
	UpdatePortfolio(ctx context.Context, email string, data string) error
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{
		dao: d,
	}
}

func (ur *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return ur.toDomain(u), nil
}

func (ur *userRepository) UpdatePortfolio(ctx context.Context, email string, data string) error {
	err := ur.dao.UpdatePortfolio(ctx, email, data)
	if errors.Is(err, dao.ErrDataNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (ur *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
		PortfolioData: sql.NullString{
			String: u.PortfolioData,
			Valid:  u.PortfolioData != "",
		},
	}
}

func (ur *userRepository) toDomain(ue dao.User) domain.User {
	return domain.User{
		Id:            ue.Id,
		Email:         ue.Email,
		Password:      ue.Password,
		Name:          ue.Name,
		PortfolioData: ue.PortfolioData.String,
	}
}
