package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/domain"
	"github.com/pofo-ai/pofo/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerateService struct {
	doc domain.Document
	err error
}

func (f *fakeGenerateService) Generate(ctx context.Context, answers map[string]string) (domain.Document, error) {
	return f.doc, f.err
}

// fakeUserService 블롭 저장만 흉내낸다
type fakeUserService struct {
	blobs map[string]string
}

func (f *fakeUserService) Signup(ctx context.Context, email, password, name string) error {
	return nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (user.User, error) {
	return user.User{}, nil
}

func (f *fakeUserService) SocialLogin(ctx context.Context, info user.SocialInfo) (user.User, error) {
	return user.User{}, nil
}

func (f *fakeUserService) SavePortfolio(ctx context.Context, email string, data string) error {
	if _, ok := f.blobs[email]; !ok {
		return user.ErrUserNotFound
	}
	f.blobs[email] = data
	return nil
}

func (f *fakeUserService) Portfolio(ctx context.Context, email string) (string, error) {
	data, ok := f.blobs[email]
	if !ok {
		return "", user.ErrUserNotFound
	}
	if data == "" {
		return "", user.ErrPortfolioNotFound
	}
	return data, nil
}

func newTestServer(gen *fakeGenerateService, users *fakeUserService) *gin.Engine {
	server := gin.New()
	NewHandler(gen, users).PublicRoutes(server)
	return server
}

func TestHandler_SaveAndGet(t *testing.T) {
	users := &fakeUserService{blobs: map[string]string{
		"kim@test.com":   "",
		"empty@test.com": "",
	}}
	server := newTestServer(&fakeGenerateService{}, users)

	t.Run("저장 성공", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/save-portfolio",
			bytes.NewBufferString(`{"email":"kim@test.com","portfolio_data":{"hero":{"title":"안녕하세요"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		var res struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Portfolio saved successfully", res.Msg)
	})

	t.Run("없는 사용자 저장은 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/save-portfolio",
			bytes.NewBufferString(`{"email":"ghost@test.com","portfolio_data":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		var res struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "User not found", res.Msg)
	})

	t.Run("조회는 저장된 블롭을 그대로", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-portfolio/kim@test.com", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		var res struct {
			Data GetResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.JSONEq(t, `{"hero":{"title":"안녕하세요"}}`, string(res.Data.PortfolioData))
	})

	t.Run("없는 사용자 조회는 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-portfolio/ghost@test.com", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		var res struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "User not found", res.Msg)
	})

	t.Run("블롭이 비어 있으면 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-portfolio/empty@test.com", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		var res struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Portfolio data not found", res.Msg)
	})
}
