package ai

import "github.com/pofo-ai/pofo/internal/ai/internal/web"

type Handler = web.Handler

type Module struct {
	Svc       LLMService
	ChatSvc   ChatService
	AnswerSvc AnswerService
	LogRepo   LLMLogRepo
	Hdl       *Handler
}
