package service

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm"
)

const (
	coachEmptyContext  = "아직 입력된 포트폴리오 정보가 없습니다."
	docentEmptyContext = "포트폴리오 정보가 제공되지 않았습니다."
)

type ChatService interface {
	// Coach 포포. 포트폴리오를 만드는 과정을 도와준다.
	Coach(ctx context.Context, uid int64, req domain.ChatRequest) (string, error)
	// Docent 무무. 완성된 포트폴리오를 관람객에게 설명한다.
	Docent(ctx context.Context, uid int64, req domain.ChatRequest) (string, error)
}

type chatService struct {
	svc llm.Service
}

func NewChatService(svc llm.Service) ChatService {
	return &chatService{svc: svc}
}

func (s *chatService) Coach(ctx context.Context, uid int64, req domain.ChatRequest) (string, error) {
	sysInput := coachEmptyContext
	if req.PortfolioContext != "" {
		sysInput = "현재 포트폴리오 정보: " + req.PortfolioContext
	}
	return s.invoke(ctx, domain.BizCoachChat, uid, req.Message, sysInput)
}

func (s *chatService) Docent(ctx context.Context, uid int64, req domain.ChatRequest) (string, error) {
	sysInput := docentEmptyContext
	if req.PortfolioContext != "" {
		sysInput = "사용자 상세 데이터: " + req.PortfolioContext
	}
	return s.invoke(ctx, domain.BizDocentChat, uid, req.Message, sysInput)
}

func (s *chatService) invoke(ctx context.Context, biz string, uid int64, msg, sysInput string) (string, error) {
	resp, err := s.svc.Invoke(ctx, domain.LLMRequest{
		Biz:         biz,
		Uid:         uid,
		Tid:         shortuuid.New(),
		Input:       []string{msg},
		SystemInput: []string{sysInput},
	})
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}
