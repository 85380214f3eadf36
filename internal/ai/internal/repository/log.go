package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/repository/dao"
)

type LLMLogRepo interface {
	SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error)
	RecentLogs(ctx context.Context, limit int) ([]domain.LLMRecord, error)
}

type llmLogRepo struct {
	logDao dao.LLMRecordDAO
}

func NewLLMLogRepo(logDao dao.LLMRecordDAO) LLMLogRepo {
	return &llmLogRepo{
		logDao: logDao,
	}
}

func (g *llmLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return g.logDao.Save(ctx, g.toEntity(l))
}

func (g *llmLogRepo) RecentLogs(ctx context.Context, limit int) ([]domain.LLMRecord, error) {
	logs, err := g.logDao.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(idx int, src dao.AILog) domain.LLMRecord {
		return g.toDomain(src)
	}), nil
}

func (g *llmLogRepo) toEntity(r domain.LLMRecord) dao.AILog {
	return dao.AILog{
		Id:         r.Id,
		Tid:        r.Tid,
		Uid:        sql.NullInt64{Int64: r.Uid, Valid: r.Uid != 0},
		PromptType: r.Biz,
		ModelName:  r.Model,
		Status:     r.Status.ToUint8(),
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   r.Input,
		},
		Answer: sqlx.NewNullString(r.Answer),
	}
}

func (g *llmLogRepo) toDomain(e dao.AILog) domain.LLMRecord {
	return domain.LLMRecord{
		Id:     e.Id,
		Tid:    e.Tid,
		Uid:    e.Uid.Int64,
		Biz:    e.PromptType,
		Model:  e.ModelName,
		Status: domain.RecordStatus(e.Status),
		Input:  e.Input.Val,
		Answer: e.Answer.String,
		Ctime:  e.Ctime,
		Utime:  e.Utime,
	}
}
