package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service"
)

// 채팅은 실패해도 이용자에게 에러를 그대로 보여주지 않는다.
const chatApology = "죄송합니다. 응답 생성 중 오류가 발생했습니다."

type Handler struct {
	chatSvc   service.ChatService
	answerSvc service.AnswerService
	logger    *elog.Component
}

func NewHandler(chatSvc service.ChatService, answerSvc service.AnswerService) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		answerSvc: answerSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/chat", ginx.B(h.Chat))
	server.POST("/generate-chat-answers", ginx.B(h.GenerateChatAnswers))
}

func (h *Handler) Chat(ctx *ginx.Context, req ChatReq) (ginx.Result, error) {
	var (
		reply string
		err   error
	)
	chatReq := domain.ChatRequest{
		Message:          req.Message,
		PortfolioContext: req.PortfolioContext,
		Shared:           req.IsShared,
	}
	if req.IsShared {
		reply, err = h.chatSvc.Docent(ctx, 0, chatReq)
	} else {
		reply, err = h.chatSvc.Coach(ctx, 0, chatReq)
	}
	if err != nil {
		h.logger.Error("채팅 응답 생성 실패", elog.FieldErr(err))
		reply = chatApology
	}
	return ginx.Result{
		Data: ChatResp{Reply: reply},
	}, nil
}

func (h *Handler) GenerateChatAnswers(ctx *ginx.Context, req GenerateAnswersReq) (ginx.Result, error) {
	res, err := h.answerSvc.GenerateDrafts(ctx, 0, req.PortfolioContext)
	if err != nil {
		var ee *service.ExtractError
		if errors.As(err, &ee) {
			// 진단용으로 원문을 같이 내려준다
			return ginx.Result{
				Data: map[string]any{
					"error":       ee.Reason,
					"raw_content": ee.RawContent,
				},
			}, nil
		}
		// 생성 계열은 실패해도 200 에 error 필드로 내려간다
		h.logger.Error("답변 초안 생성 실패", elog.FieldErr(err))
		return ginx.Result{
			Data: map[string]any{
				"error": err.Error(),
			},
		}, nil
	}
	return ginx.Result{Data: res}, nil
}
