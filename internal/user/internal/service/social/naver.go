package social

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/pofo-ai/pofo/internal/user/internal/domain"
)

type NaverVerifier struct {
	baseURL string
	client  *http.Client
}

func NewNaverVerifier() *NaverVerifier {
	return &NaverVerifier{
		baseURL: "https://openapi.naver.com/v1/nid/me",
		client:  http.DefaultClient,
	}
}

func (n *NaverVerifier) Verify(ctx context.Context, token string) (domain.SocialInfo, error) {
	var res naverMeResult
	err := httpx.NewRequest(ctx, http.MethodGet, n.baseURL).
		Client(n.client).
		AddHeader("Authorization", "Bearer "+token).
		Do().JSONScan(&res)
	if err != nil {
		return domain.SocialInfo{}, fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}
	if res.ResultCode != "00" {
		return domain.SocialInfo{}, fmt.Errorf("%w: 네이버 인증 실패 %s, %s",
			ErrProviderRejected, res.ResultCode, res.Message)
	}
	if res.Response.Email == "" {
		// 카카오와 달리 대체 아이디 정책이 없다
		return domain.SocialInfo{}, ErrMissingEmail
	}
	name := res.Response.Name
	if name == "" {
		name = "Naver User"
	}
	return domain.SocialInfo{
		Provider: domain.ProviderNaver,
		Email:    res.Response.Email,
		Name:     name,
	}, nil
}

type naverMeResult struct {
	ResultCode string `json:"resultcode"`
	Message    string `json:"message"`
	Response   struct {
		Id    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"response"`
}
