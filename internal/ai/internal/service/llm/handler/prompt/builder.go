package prompt

import (
	"context"
	"fmt"

	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder biz 별 고정 프롬프트 설정을 요청에 채워 넣는다.
// 설정은 DB 가 아니라 코드에 박혀 있다. 프롬프트를 운영 중에 바꿀 일이
// 생기면 그때 저장소로 옮긴다.
type HandlerBuilder struct {
	configs map[string]domain.BizConfig
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler(model string) *HandlerBuilder {
	return &HandlerBuilder{
		configs: bizConfigs(model),
	}
}

func (h *HandlerBuilder) Name() string {
	return "prompt"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		cfg, ok := h.configs[req.Biz]
		if !ok {
			return domain.LLMResponse{}, fmt.Errorf("알 수 없는 biz: %s", req.Biz)
		}
		req.Config = cfg
		return next.Handle(ctx, req)
	})
}
