package social

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/pofo-ai/pofo/internal/user/internal/domain"
)

type KakaoVerifier struct {
	baseURL string
	client  *http.Client
}

func NewKakaoVerifier() *KakaoVerifier {
	return &KakaoVerifier{
		baseURL: "https://kapi.kakao.com/v2/user/me",
		client:  http.DefaultClient,
	}
}

func (k *KakaoVerifier) Verify(ctx context.Context, token string) (domain.SocialInfo, error) {
	var res kakaoMeResult
	err := httpx.NewRequest(ctx, http.MethodGet, k.baseURL).
		Client(k.client).
		AddHeader("Authorization", "Bearer "+token).
		Do().JSONScan(&res)
	if err != nil {
		return domain.SocialInfo{}, fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}
	if res.KakaoAccount == nil {
		return domain.SocialInfo{}, fmt.Errorf("%w: 카카오 계정 정보를 불러올 수 없습니다", ErrProviderRejected)
	}
	name := "Kakao User"
	if res.KakaoAccount.Profile != nil && res.KakaoAccount.Profile.Nickname != "" {
		name = res.KakaoAccount.Profile.Nickname
	}
	email := res.KakaoAccount.Email
	if email == "" {
		// 이메일 제공 미동의 계정은 임시 아이디로 대체한다
		email = fmt.Sprintf("%d@kakao.temp", res.Id)
	}
	return domain.SocialInfo{
		Provider: domain.ProviderKakao,
		Email:    email,
		Name:     name,
	}, nil
}

type kakaoMeResult struct {
	Id           int64         `json:"id"`
	KakaoAccount *kakaoAccount `json:"kakao_account"`
}

type kakaoAccount struct {
	Email   string        `json:"email"`
	Profile *kakaoProfile `json:"profile"`
}

type kakaoProfile struct {
	Nickname string `json:"nickname"`
}
