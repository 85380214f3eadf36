package user

import (
	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"github.com/pofo-ai/pofo/internal/user/internal/service"
	"github.com/pofo-ai/pofo/internal/user/internal/service/social"
	"github.com/pofo-ai/pofo/internal/user/internal/web"
)

// Handler ioc 에서 라우트 등록에 쓴다
type Handler = web.Handler
type User = domain.User
type SocialInfo = domain.SocialInfo

// UserService 다른 모듈이 저장소 대신 이 서비스를 통해 사용자를 다룬다
type UserService = service.UserService

var (
	ErrUserNotFound      = service.ErrUserNotFound
	ErrPortfolioNotFound = service.ErrPortfolioNotFound
)

type Module struct {
	Hdl *Handler
	Svc UserService
}

// wire 가 같은 인터페이스 세 개를 구분하지 못해서 이름을 나눠 둔다
type googleVerifier social.Verifier
type kakaoVerifier social.Verifier
type naverVerifier social.Verifier
