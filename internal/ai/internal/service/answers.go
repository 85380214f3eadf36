package service

import (
	"context"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm"
)

// 프런트 설문 12개 중 포트폴리오 내용에서 답을 뽑아야 하는 핵심 3개.
// 모델이 빼먹으면 자리 표시 문구를 채워서 내려준다.
var requiredAnswerKeys = []string{
	"best_project",
	"role_contribution",
	"core_skills",
}

const missingAnswerPlaceholder = "정보를 바탕으로 답변을 작성하지 못했습니다. 직접 입력해 주세요."

type AnswerService interface {
	GenerateDrafts(ctx context.Context, uid int64, portfolioData string) (map[string]any, error)
}

type answerService struct {
	svc llm.Service
}

func NewAnswerService(svc llm.Service) AnswerService {
	return &answerService{svc: svc}
}

func (s *answerService) GenerateDrafts(ctx context.Context, uid int64, portfolioData string) (map[string]any, error) {
	resp, err := s.svc.Invoke(ctx, domain.LLMRequest{
		Biz:   domain.BizChatAnswers,
		Uid:   uid,
		Tid:   shortuuid.New(),
		Input: []string{portfolioData},
	})
	if err != nil {
		return nil, err
	}
	res, err := ParseJSONObject(resp.Answer)
	if err != nil {
		return nil, err
	}
	for _, key := range requiredAnswerKeys {
		if _, ok := res[key]; !ok {
			res[key] = missingAnswerPlaceholder
		}
	}
	return res, nil
}
