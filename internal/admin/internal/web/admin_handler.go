package web

import (
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/admin/internal/errs"
	"github.com/pofo-ai/pofo/internal/admin/internal/service"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin")
	g.GET("/stats", ginx.W(h.Stats))
	g.GET("/users", ginx.W(h.ListUsers))
	g.DELETE("/users/:id", ginx.W(h.DeleteUser))
	g.POST("/users/batch-delete", ginx.B(h.BatchDeleteUsers))
	g.GET("/portfolios", ginx.W(h.ListPortfolios))
	g.GET("/stats/ai", ginx.W(h.AIStats))
	g.GET("/templates/config", ginx.W(h.TemplateConfigs))
	g.PUT("/templates/config/:key", ginx.B(h.UpdateTemplateConfig))
}

func (h *AdminHandler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return ginx.Result{
			Code: errs.StatsFailed.Code,
			Msg:  errs.StatsFailed.Msg,
		}, err
	}
	return ginx.Result{Data: StatsVO{
		TotalUsers:      stats.TotalUsers,
		TotalPortfolios: stats.TotalPortfolios,
		TodayPortfolios: stats.TodayPortfolios,
		ActiveUsers:     stats.ActiveUsers,
	}}, nil
}

func (h *AdminHandler) ListUsers(ctx *ginx.Context) (ginx.Result, error) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	search := ctx.Query("search").StringOrDefault("")
	page, err := h.svc.ListUsers(ctx, skip, limit, search)
	if err != nil {
		return ginx.Result{
			Code: errs.ListFailed.Code,
			Msg:  errs.ListFailed.Msg,
		}, err
	}
	return ginx.Result{Data: newUserPageVO(page)}, nil
}

func (h *AdminHandler) DeleteUser(ctx *ginx.Context) (ginx.Result, error) {
	id := ctx.Param("id").StringOrDefault("")
	res, err := h.svc.DeleteUsers(ctx, []string{id})
	if err != nil {
		return ginx.Result{
			Code: errs.DeleteFail.Code,
			Msg:  errs.DeleteFail.Msg,
		}, err
	}
	return ginx.Result{
		Msg: "사용자가 삭제되었습니다",
		Data: BatchDeleteVO{
			Message:           "사용자가 삭제되었습니다",
			DeletedPortfolios: res.DeletedPortfolios,
			DeletedUsers:      res.DeletedUsers,
		},
	}, nil
}

func (h *AdminHandler) BatchDeleteUsers(ctx *ginx.Context, req BatchDeleteReq) (ginx.Result, error) {
	if len(req.UserIds) == 0 {
		return ginx.Result{
			Code: errs.DeleteFail.Code,
			Msg:  "삭제할 사용자가 없습니다",
		}, nil
	}
	res, err := h.svc.DeleteUsers(ctx, req.UserIds)
	if err != nil {
		return ginx.Result{
			Code: errs.DeleteFail.Code,
			Msg:  errs.DeleteFail.Msg,
		}, err
	}
	return ginx.Result{
		Msg: "일괄 삭제 성공",
		Data: BatchDeleteVO{
			Message:           "일괄 삭제 성공",
			DeletedPortfolios: res.DeletedPortfolios,
			DeletedUsers:      res.DeletedUsers,
		},
	}, nil
}

func (h *AdminHandler) ListPortfolios(ctx *ginx.Context) (ginx.Result, error) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	search := ctx.Query("search").StringOrDefault("")
	page, err := h.svc.ListPortfolios(ctx, skip, limit, search)
	if err != nil {
		return ginx.Result{
			Code: errs.ListFailed.Code,
			Msg:  errs.ListFailed.Msg,
		}, err
	}
	return ginx.Result{Data: newPortfolioPageVO(page)}, nil
}

func (h *AdminHandler) AIStats(ctx *ginx.Context) (ginx.Result, error) {
	stats := h.svc.AIStats(ctx)
	return ginx.Result{Data: AIStatsVO{
		TotalRequests: stats.TotalRequests,
		ByType:        stats.ByType,
		ByModel:       stats.ByModel,
	}}, nil
}

func (h *AdminHandler) TemplateConfigs(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: h.svc.TemplateConfigs(ctx)}, nil
}

func (h *AdminHandler) UpdateTemplateConfig(ctx *ginx.Context, req TemplateConfigReq) (ginx.Result, error) {
	key := ctx.Param("key").StringOrDefault("")
	if err := h.svc.UpsertTemplateConfig(ctx, key, req.IsActive); err != nil {
		return ginx.Result{
			Code: errs.SaveFailed.Code,
			Msg:  errs.SaveFailed.Msg,
		}, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: map[string]bool{key: req.IsActive},
	}, nil
}
