package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/service"
	"github.com/pofo-ai/pofo/internal/user"
)

type Handler struct {
	genSvc  service.GenerateService
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(genSvc service.GenerateService, userSvc user.UserService) *Handler {
	return &Handler{
		genSvc:  genSvc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/submit", ginx.B(h.Submit))
	server.POST("/save-portfolio", ginx.B(h.Save))
	server.GET("/get-portfolio/:email", ginx.W(h.Get))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	doc, err := h.genSvc.Generate(ctx, req.Answers)
	if err != nil {
		h.logger.Error("포트폴리오 생성 실패", elog.FieldErr(err))
		return ginx.Result{
			Data: SubmitResp{
				Status:  "error",
				Message: err.Error(),
			},
		}, nil
	}
	return ginx.Result{
		Data: SubmitResp{
			Status:  "success",
			Message: "완료!",
			Data:    &doc,
		},
	}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	err := h.userSvc.SavePortfolio(ctx, req.Email, string(req.PortfolioData))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return notFound(ctx, "User not found")
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Portfolio saved successfully"}, nil
}

func (h *Handler) Get(ctx *ginx.Context) (ginx.Result, error) {
	email := ctx.Param("email").StringOrDefault("")
	data, err := h.userSvc.Portfolio(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			return notFound(ctx, "User not found")
		case errors.Is(err, user.ErrPortfolioNotFound):
			return notFound(ctx, "Portfolio data not found")
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: GetResp{PortfolioData: []byte(data)},
	}, nil
}

func notFound(ctx *ginx.Context, msg string) (ginx.Result, error) {
	ctx.PureJSON(http.StatusNotFound, ginx.Result{Msg: msg})
	return ginx.Result{}, ginx.ErrNoResponse
}
