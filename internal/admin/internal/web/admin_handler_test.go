package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminService struct {
	lastSearch  string
	lastDeleted []string
	lastKey     string
	lastActive  bool
}

func (f *fakeAdminService) Stats(ctx context.Context) (domain.Stats, error) {
	return domain.Stats{TotalUsers: 2, TotalPortfolios: 3, TodayPortfolios: 1, ActiveUsers: 1}, nil
}

func (f *fakeAdminService) ListUsers(ctx context.Context, skip, limit int, search string) (domain.UserPage, error) {
	f.lastSearch = search
	return domain.UserPage{Skip: skip, Limit: limit}, nil
}

func (f *fakeAdminService) DeleteUsers(ctx context.Context, userIds []string) (domain.BatchDeleteResult, error) {
	f.lastDeleted = userIds
	return domain.BatchDeleteResult{DeletedPortfolios: 2, DeletedUsers: int64(len(userIds))}, nil
}

func (f *fakeAdminService) ListPortfolios(ctx context.Context, skip, limit int, search string) (domain.PortfolioPage, error) {
	f.lastSearch = search
	return domain.PortfolioPage{Skip: skip, Limit: limit}, nil
}

func (f *fakeAdminService) AIStats(ctx context.Context) domain.AIStats {
	return domain.AIStats{ByType: map[string]int{}, ByModel: map[string]int{}}
}

func (f *fakeAdminService) TemplateConfigs(ctx context.Context) map[string]bool {
	return map[string]bool{"minimal": true}
}

func (f *fakeAdminService) UpsertTemplateConfig(ctx context.Context, key string, active bool) error {
	f.lastKey = key
	f.lastActive = active
	return nil
}

func newTestServer(svc *fakeAdminService) *gin.Engine {
	server := gin.New()
	NewAdminHandler(svc).PrivateRoutes(server)
	return server
}

func TestAdminHandler_Stats(t *testing.T) {
	server := newTestServer(&fakeAdminService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var res struct {
		Data StatsVO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, StatsVO{
		TotalUsers:      2,
		TotalPortfolios: 3,
		TodayPortfolios: 1,
		ActiveUsers:     1,
	}, res.Data)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	svc := &fakeAdminService{}
	server := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/users?skip=10&limit=5&search=kim", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "kim", svc.lastSearch)
	var res struct {
		Data UserPageVO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 10, res.Data.Skip)
	assert.Equal(t, 5, res.Data.Limit)
}

func TestAdminHandler_DeleteUsers(t *testing.T) {
	t.Run("단건 삭제는 경로의 id 로", func(t *testing.T) {
		svc := &fakeAdminService{}
		server := newTestServer(svc)

		req := httptest.NewRequest(http.MethodDelete, "/admin/users/u1", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"u1"}, svc.lastDeleted)
	})

	t.Run("일괄 삭제", func(t *testing.T) {
		svc := &fakeAdminService{}
		server := newTestServer(svc)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/batch-delete",
			bytes.NewBufferString(`{"user_ids":["u1","u2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, []string{"u1", "u2"}, svc.lastDeleted)
		var res struct {
			Msg  string        `json:"msg"`
			Data BatchDeleteVO `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "일괄 삭제 성공", res.Msg)
		assert.Equal(t, int64(2), res.Data.DeletedUsers)
	})

	t.Run("빈 목록", func(t *testing.T) {
		svc := &fakeAdminService{}
		server := newTestServer(svc)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/batch-delete",
			bytes.NewBufferString(`{"user_ids":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Nil(t, svc.lastDeleted)
		var res struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "삭제할 사용자가 없습니다", res.Msg)
	})
}

func TestAdminHandler_UpdateTemplateConfig(t *testing.T) {
	svc := &fakeAdminService{}
	server := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPut, "/admin/templates/config/retro",
		bytes.NewBufferString(`{"is_active":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "retro", svc.lastKey)
	assert.False(t, svc.lastActive)
	var res struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, map[string]bool{"retro": false}, res.Data)
}
