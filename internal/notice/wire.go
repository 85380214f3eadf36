//go:build wireinject

package notice

import (
	"github.com/google/wire"
	"github.com/pofo-ai/pofo/internal/notice/internal/repository"
	"github.com/pofo-ai/pofo/internal/notice/internal/repository/dao"
	"github.com/pofo-ai/pofo/internal/notice/internal/service"
	"github.com/pofo-ai/pofo/internal/notice/internal/web"
	"github.com/pofo-ai/pofo/internal/pkg/database"
)

func InitModule(db *database.Managed) *Module {
	wire.Build(
		initDAO,
		repository.NewNoticeRepository,
		service.NewNoticeService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initDAO(db *database.Managed) dao.NoticeDAO {
	err := dao.InitTables(db.Admin)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMNoticeDAO(db)
}
