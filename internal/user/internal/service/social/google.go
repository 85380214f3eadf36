package social

import (
	"context"
	"fmt"

	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier ID 토큰을 로컬에서 암호학적으로 검증한다.
// 카카오/네이버와 달리 me 엔드포인트 왕복이 없다.
type GoogleVerifier struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

func (g *GoogleVerifier) Verify(ctx context.Context, token string) (domain.SocialInfo, error) {
	payload, err := g.validate(ctx, token, g.clientID)
	if err != nil {
		return domain.SocialInfo{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return domain.SocialInfo{}, ErrInvalidToken
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = "Google User"
	}
	return domain.SocialInfo{
		Provider: domain.ProviderGoogle,
		Email:    email,
		Name:     name,
	}, nil
}
