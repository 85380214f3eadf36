//go:build wireinject

package admin

import (
	"github.com/google/wire"
	"github.com/pofo-ai/pofo/internal/admin/internal/repository"
	"github.com/pofo-ai/pofo/internal/admin/internal/repository/dao"
	"github.com/pofo-ai/pofo/internal/admin/internal/service"
	"github.com/pofo-ai/pofo/internal/admin/internal/web"
	"github.com/pofo-ai/pofo/internal/ai"
	"github.com/pofo-ai/pofo/internal/pkg/database"
)

func InitModule(db *database.Managed, aiModule *ai.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewAdminRepository,
		wire.FieldsOf(new(*ai.Module), "LogRepo"),
		service.NewAdminService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initDAO(db *database.Managed) dao.AdminDAO {
	err := dao.InitTables(db.Admin)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMAdminDAO(db)
}
