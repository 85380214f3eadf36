//go:build wireinject

package portfolio

import (
	"github.com/google/wire"
	"github.com/pofo-ai/pofo/internal/ai"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/service"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/web"
	"github.com/pofo-ai/pofo/internal/user"
)

func InitModule(aiModule *ai.Module, userModule *user.Module) *Module {
	wire.Build(
		service.NewGenerateService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
	)
	return new(Module)
}
