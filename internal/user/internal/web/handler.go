package web

import (
	"encoding/json"
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"github.com/pofo-ai/pofo/internal/user/internal/errs"
	"github.com/pofo-ai/pofo/internal/user/internal/service"
	"github.com/pofo-ai/pofo/internal/user/internal/service/social"
)

type Handler struct {
	userSvc service.UserService
	google  social.Verifier
	kakao   social.Verifier
	naver   social.Verifier
}

func NewHandler(userSvc service.UserService,
	google social.Verifier,
	kakao social.Verifier,
	naver social.Verifier) *Handler {
	return &Handler{
		userSvc: userSvc,
		google:  google,
		kakao:   kakao,
		naver:   naver,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/signup", ginx.B(h.Signup))
	server.POST("/login", ginx.B(h.Login))
	server.POST("/google-login", ginx.B(h.GoogleLogin))
	server.POST("/kakao-login", ginx.B(h.KakaoLogin))
	server.POST("/naver-login", ginx.B(h.NaverLogin))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	err := h.userSvc.Signup(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUserDuplicate) {
			return badRequest(ctx, errs.UserDuplicate)
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "회원가입 성공"}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return badRequest(ctx, errs.InvalidCredentials)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "로그인 성공",
		Data: newLoginResp(u),
	}, nil
}

func (h *Handler) GoogleLogin(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	return h.socialLogin(ctx, h.google, req.Token, "구글 로그인 성공")
}

func (h *Handler) KakaoLogin(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	return h.socialLogin(ctx, h.kakao, req.Token, "카카오 로그인 성공")
}

func (h *Handler) NaverLogin(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	return h.socialLogin(ctx, h.naver, req.Token, "네이버 로그인 성공")
}

func (h *Handler) socialLogin(ctx *ginx.Context, v social.Verifier,
	token string, successMsg string) (ginx.Result, error) {
	info, err := v.Verify(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, social.ErrInvalidToken):
			return badRequest(ctx, errs.InvalidToken)
		case errors.Is(err, social.ErrMissingEmail):
			return badRequest(ctx, errs.MissingEmail)
		case errors.Is(err, social.ErrProviderRejected):
			return badRequest(ctx, errs.ProviderRejected)
		}
		return systemErrorResult, err
	}
	u, err := h.userSvc.SocialLogin(ctx, info)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  successMsg,
		Data: newLoginResp(u),
	}, nil
}

func newLoginResp(u domain.User) LoginResp {
	var doc json.RawMessage
	if u.PortfolioData != "" {
		doc = json.RawMessage(u.PortfolioData)
	}
	return LoginResp{
		UserName:      u.Name,
		Email:         u.Email,
		PortfolioData: doc,
	}
}
