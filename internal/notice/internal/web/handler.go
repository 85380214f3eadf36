package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/notice/internal/domain"
	"github.com/pofo-ai/pofo/internal/notice/internal/service"
)

// Handler 일반 사용자에게 노출되는 공개 라우트
type Handler struct {
	svc service.NoticeService
}

func NewHandler(svc service.NoticeService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/notices/active", ginx.W(h.Active))
}

func (h *Handler) Active(ctx *ginx.Context) (ginx.Result, error) {
	ns := h.svc.ActiveList(ctx)
	return ginx.Result{
		Data: slice.Map(ns, func(idx int, src domain.Notice) NoticeVO {
			return newNoticeVO(src)
		}),
	}, nil
}
