//go:build wireinject

package ai

import (
	"sync"

	"github.com/google/wire"
	"github.com/pofo-ai/pofo/internal/ai/internal/repository"
	"github.com/pofo-ai/pofo/internal/ai/internal/repository/dao"
	"github.com/pofo-ai/pofo/internal/ai/internal/service"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/log"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler/record"
	"github.com/pofo-ai/pofo/internal/ai/internal/web"
	"github.com/pofo-ai/pofo/internal/pkg/database"
	"gorm.io/gorm"
)

func InitModule(db *database.Managed) (*Module, error) {
	wire.Build(
		InitLLMRecordDAO,
		repository.NewLLMLogRepo,

		log.NewHandler,
		record.NewHandler,
		InitPromptBuilder,
		InitCommonHandlers,
		InitRootHandler,

		llm.NewLLMService,
		service.NewChatService,
		service.NewAnswerService,
		web.NewHandler,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

// 사용 로그는 관리자 대시보드가 읽어야 해서 관리형 스토어의 상위 권한 핸들에 쓴다.
func InitLLMRecordDAO(db *database.Managed) dao.LLMRecordDAO {
	InitTableOnce(db.Admin)
	return dao.NewGORMLLMRecordDAO(db.Admin)
}
