package social

import (
	"context"
	"errors"

	"github.com/pofo-ai/pofo/internal/user/internal/domain"
)

var (
	// ErrInvalidToken 토큰 자체 검증 실패. 구글 ID 토큰 경로
	ErrInvalidToken = errors.New("유효하지 않은 토큰")
	// ErrProviderRejected 제공자 API 가 요청을 거절
	ErrProviderRejected = errors.New("제공자 인증 실패")
	// ErrMissingEmail 이메일 동의 없이는 계정을 만들 수 없는 제공자
	ErrMissingEmail = errors.New("이메일 정보 없음")
)

//go:generate mockgen -source=./type.go -package=socialmocks -destination=mocks/verifier.mock.go Verifier
type Verifier interface {
	// Verify 토큰을 제공자 쪽에서 확인하고 검증된 신원을 돌려준다
	Verify(ctx context.Context, token string) (domain.SocialInfo, error)
}
