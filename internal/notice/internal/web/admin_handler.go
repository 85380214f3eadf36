package web

import (
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/notice/internal/domain"
	"github.com/pofo-ai/pofo/internal/notice/internal/errs"
	"github.com/pofo-ai/pofo/internal/notice/internal/service"
)

type AdminHandler struct {
	svc service.NoticeService
}

func NewAdminHandler(svc service.NoticeService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/notices")
	g.GET("", ginx.W(h.List))
	g.POST("", ginx.B(h.Create))
	g.PUT("/:id", ginx.B(h.Update))
	g.DELETE("/:id", ginx.W(h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	ns, err := h.svc.List(ctx, skip, limit)
	if err != nil {
		return ginx.Result{
			Code: errs.ListFailed.Code,
			Msg:  errs.ListFailed.Msg,
		}, err
	}
	return ginx.Result{
		Data: slice.Map(ns, func(idx int, src domain.Notice) NoticeVO {
			return newNoticeVO(src)
		}),
	}, nil
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateNoticeReq) (ginx.Result, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	n, err := h.svc.Create(ctx, domain.Notice{
		Title:   req.Title,
		Content: req.Content,
		Active:  active,
	})
	if err != nil {
		return ginx.Result{
			Code: errs.SaveFailed.Code,
			Msg:  errs.SaveFailed.Msg,
		}, err
	}
	return ginx.Result{Data: newNoticeVO(n)}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateNoticeReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Param("id").StringOrDefault(""), 10, 64)
	if err != nil {
		return ginx.Result{
			Code: errs.SaveFailed.Code,
			Msg:  errs.SaveFailed.Msg,
		}, err
	}
	err = h.svc.Update(ctx, id, domain.Patch{
		Title:   req.Title,
		Content: req.Content,
		Active:  req.IsActive,
	})
	if err != nil {
		return ginx.Result{
			Code: errs.SaveFailed.Code,
			Msg:  errs.SaveFailed.Msg,
		}, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Param("id").StringOrDefault(""), 10, 64)
	if err != nil {
		return ginx.Result{
			Code: errs.SaveFailed.Code,
			Msg:  errs.SaveFailed.Msg,
		}, err
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{Msg: "공지사항이 삭제되었습니다"}, nil
}
