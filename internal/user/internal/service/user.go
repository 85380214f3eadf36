package service

import (
	"context"
	"errors"

	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"github.com/pofo-ai/pofo/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDuplicate = repository.ErrUserDuplicate
	// ErrInvalidCredentials 계정 없음과 비밀번호 불일치를 구분하지 않는다.
	// 가입 여부를 바깥에서 탐지할 수 없게 하기 위함이다.
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 틀렸습니다")
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrPortfolioNotFound  = errors.New("저장된 포트폴리오가 없습니다")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Signup(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) (domain.User, error)
	// SocialLogin 검증된 신원을 처음 보면 표식 비밀번호로 가입시키고,
	// 이미 있으면 그대로 쓴다. 기존 계정의 이름은 갱신하지 않는다.
	SocialLogin(ctx context.Context, info domain.SocialInfo) (domain.User, error)
	SavePortfolio(ctx context.Context, email string, data string) error
	Portfolio(ctx context.Context, email string) (string, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Signup(ctx context.Context, email, password, name string) error {
	_, err := svc.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserDuplicate
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = svc.repo.Create(ctx, domain.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
	})
	return err
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	// 소셜 전용 계정의 표식 비밀번호는 bcrypt 해시가 아니라서 여기서 걸러진다
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (svc *userService) SocialLogin(ctx context.Context, info domain.SocialInfo) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, info.Email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, err
	}
	nu := domain.User{
		Email:    info.Email,
		Password: info.Provider.SentinelPassword(),
		Name:     info.Name,
	}
	id, err := svc.repo.Create(ctx, nu)
	if err != nil {
		// 동시 가입 경합에서 진 쪽은 이미 만들어진 행을 다시 읽는다
		if errors.Is(err, repository.ErrUserDuplicate) {
			return svc.repo.FindByEmail(ctx, info.Email)
		}
		return domain.User{}, err
	}
	nu.Id = id
	return nu, nil
}

func (svc *userService) SavePortfolio(ctx context.Context, email string, data string) error {
	return svc.repo.UpdatePortfolio(ctx, email, data)
}

func (svc *userService) Portfolio(ctx context.Context, email string) (string, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.PortfolioData == "" {
		return "", ErrPortfolioNotFound
	}
	return u.PortfolioData, nil
}
