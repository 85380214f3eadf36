package zhipu

import (
	"context"

	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

// Handler gemini 를 못 쓰는 환경을 위한 대체 플랫폼
type Handler struct {
	client *zhipu.Client
}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.buildReq(req).Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	svc := h.client.ChatCompletion(req.Config.Model)
	if sys := req.SystemPrompt(); sys != "" {
		svc = svc.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: sys,
		})
	}
	svc = svc.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt(),
	})
	if req.Config.Temperature > 0 {
		svc = svc.SetTemperature(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		svc = svc.SetTopP(req.Config.TopP)
	}
	return svc
}
