package social

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pofo-ai/pofo/internal/user/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestGoogleVerifier_Verify(t *testing.T) {
	t.Run("유효한 토큰", func(t *testing.T) {
		v := NewGoogleVerifier("client-id")
		v.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token-abc", token)
			assert.Equal(t, "client-id", audience)
			return &idtoken.Payload{
				Claims: map[string]any{
					"email": "g@gmail.com",
					"name":  "구글유저",
				},
			}, nil
		}

		info, err := v.Verify(context.Background(), "token-abc")
		require.NoError(t, err)
		assert.Equal(t, domain.SocialInfo{
			Provider: domain.ProviderGoogle,
			Email:    "g@gmail.com",
			Name:     "구글유저",
		}, info)
	})

	t.Run("이름 없는 토큰은 기본 이름", func(t *testing.T) {
		v := NewGoogleVerifier("client-id")
		v.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Claims: map[string]any{"email": "g@gmail.com"}}, nil
		}

		info, err := v.Verify(context.Background(), "token-abc")
		require.NoError(t, err)
		assert.Equal(t, "Google User", info.Name)
	})

	t.Run("검증 실패", func(t *testing.T) {
		v := NewGoogleVerifier("client-id")
		v.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return nil, errors.New("idtoken: signature mismatch")
		}

		_, err := v.Verify(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestKakaoVerifier_Verify(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		wantInfo domain.SocialInfo
		wantErr  error
	}{
		{
			name: "이메일 동의 계정",
			body: `{"id": 123, "kakao_account": {"email": "k@kakao.com", "profile": {"nickname": "카카오유저"}}}`,
			wantInfo: domain.SocialInfo{
				Provider: domain.ProviderKakao,
				Email:    "k@kakao.com",
				Name:     "카카오유저",
			},
		},
		{
			name: "이메일 미동의는 임시 아이디",
			body: `{"id": 456, "kakao_account": {"profile": {"nickname": "카카오유저"}}}`,
			wantInfo: domain.SocialInfo{
				Provider: domain.ProviderKakao,
				Email:    "456@kakao.temp",
				Name:     "카카오유저",
			},
		},
		{
			name: "프로필 없는 계정은 기본 이름",
			body: `{"id": 789, "kakao_account": {"email": "k2@kakao.com"}}`,
			wantInfo: domain.SocialInfo{
				Provider: domain.ProviderKakao,
				Email:    "k2@kakao.com",
				Name:     "Kakao User",
			},
		},
		{
			name:    "계정 정보 없음",
			body:    `{"msg": "this access token does not exist", "code": -401}`,
			wantErr: ErrProviderRejected,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			v := NewKakaoVerifier()
			v.baseURL = srv.URL
			info, err := v.Verify(context.Background(), "token-abc")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInfo, info)
		})
	}
}

func TestNaverVerifier_Verify(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		wantInfo domain.SocialInfo
		wantErr  error
	}{
		{
			name: "정상 응답",
			body: `{"resultcode": "00", "message": "success", "response": {"id": "abc", "email": "n@naver.com", "name": "네이버유저"}}`,
			wantInfo: domain.SocialInfo{
				Provider: domain.ProviderNaver,
				Email:    "n@naver.com",
				Name:     "네이버유저",
			},
		},
		{
			name:    "인증 거절",
			body:    `{"resultcode": "024", "message": "Authentication failed"}`,
			wantErr: ErrProviderRejected,
		},
		{
			name:    "이메일 없는 응답",
			body:    `{"resultcode": "00", "message": "success", "response": {"id": "abc", "name": "네이버유저"}}`,
			wantErr: ErrMissingEmail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			v := NewNaverVerifier()
			v.baseURL = srv.URL
			info, err := v.Verify(context.Background(), "token-abc")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInfo, info)
		})
	}
}
