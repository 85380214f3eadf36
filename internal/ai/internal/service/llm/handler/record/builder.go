package record

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/repository"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 호출 한 번마다 ai_logs 에 사용 기록을 남긴다.
// 기록 실패가 호출 자체를 망치면 안 되기 때문에 저장 에러는 로그만 남긴다.
type HandlerBuilder struct {
	repo   repository.LLMLogRepo
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler(repo repository.LLMLogRepo) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		log := domain.LLMRecord{
			Tid:    req.Tid,
			Biz:    req.Biz,
			Uid:    req.Uid,
			Model:  req.Config.Model,
			Input:  req.Input,
			Status: domain.RecordStatusProcessing,
		}
		defer func() {
			_, err1 := h.repo.SaveLog(ctx, log)
			if err1 != nil {
				h.logger.Error("AI 사용 기록 저장 실패", elog.FieldErr(err1))
			}
		}()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			log.Status = domain.RecordStatusFailed
			return domain.LLMResponse{}, err
		}
		log.Status = domain.RecordStatusSuccess
		log.Answer = resp.Answer
		return resp, err
	})
}
