//go:build wireinject

package user

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/pofo-ai/pofo/internal/user/internal/repository"
	"github.com/pofo-ai/pofo/internal/user/internal/service"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initDAO,
		repository.NewUserRepository,
		service.NewUserService,

		initGoogleVerifier,
		initKakaoVerifier,
		initNaverVerifier,
		initHandler,

		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
