//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/pofo-ai/pofo/internal/admin"
	"github.com/pofo-ai/pofo/internal/ai"
	"github.com/pofo-ai/pofo/internal/notice"
	"github.com/pofo-ai/pofo/internal/portfolio"
	"github.com/pofo-ai/pofo/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitManagedDB)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		ai.InitModule,
		wire.FieldsOf(new(*ai.Module), "Hdl"),
		portfolio.InitModule,
		wire.FieldsOf(new(*portfolio.Module), "Hdl"),
		notice.InitModule,
		wire.FieldsOf(new(*notice.Module), "Hdl", "AdminHdl"),
		admin.InitModule,
		wire.FieldsOf(new(*admin.Module), "AdminHdl"),
		initGinxServer,
		InitAdminServer,
	)
	return new(App), nil
}
