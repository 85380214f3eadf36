package ai

import (
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/repository"
	"github.com/pofo-ai/pofo/internal/ai/internal/service"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service
type ChatService = service.ChatService
type AnswerService = service.AnswerService
type ChatRequest = domain.ChatRequest

// LLMRecord 사용 로그 한 줄. 관리자 통계가 읽는다
type LLMRecord = domain.LLMRecord
type LLMLogRepo = repository.LLMLogRepo

const (
	BizAutoGenerate = domain.BizAutoGenerate
	BizCoachChat    = domain.BizCoachChat
	BizDocentChat   = domain.BizDocentChat
	BizChatAnswers  = domain.BizChatAnswers
)
