package log

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler"
)

type HandlerBuilder struct {
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler() *HandlerBuilder {
	return &HandlerBuilder{
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "log"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		logger := h.logger.With(elog.String("tid", req.Tid),
			elog.Int64("uid", req.Uid),
			elog.String("biz", req.Biz))
		logger.Debug("LLM 요청")
		resp, err := next.Handle(ctx, req)
		if err != nil {
			logger.Error("LLM 요청 실패", elog.FieldErr(err))
			return resp, err
		}
		logger.Debug("LLM 응답 성공", elog.Int64("tokens", resp.Tokens))
		return resp, err
	})
}
