package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	reply string
	err   error

	lastShared bool
}

func (f *fakeChatService) Coach(ctx context.Context, uid int64, req domain.ChatRequest) (string, error) {
	f.lastShared = false
	return f.reply, f.err
}

func (f *fakeChatService) Docent(ctx context.Context, uid int64, req domain.ChatRequest) (string, error) {
	f.lastShared = true
	return f.reply, f.err
}

type fakeAnswerService struct {
	res map[string]any
	err error
}

func (f *fakeAnswerService) GenerateDrafts(ctx context.Context, uid int64, portfolioData string) (map[string]any, error) {
	return f.res, f.err
}

func newTestServer(chatSvc service.ChatService, answerSvc service.AnswerService) *gin.Engine {
	server := gin.New()
	NewHandler(chatSvc, answerSvc).PublicRoutes(server)
	return server
}

func TestHandler_Chat(t *testing.T) {
	testCases := []struct {
		name       string
		chatSvc    *fakeChatService
		reqBody    string
		wantShared bool
		wantReply  string
	}{
		{
			name:      "편집 화면은 포포",
			chatSvc:   &fakeChatService{reply: "이 프로젝트부터 정리해 볼까요?"},
			reqBody:   `{"message":"뭐부터 쓰죠?","is_shared":false}`,
			wantReply: "이 프로젝트부터 정리해 볼까요?",
		},
		{
			name:       "공유 페이지는 무무",
			chatSvc:    &fakeChatService{reply: "이 포트폴리오의 대표작은 이렇습니다."},
			reqBody:    `{"message":"대표작이 뭐예요?","is_shared":true}`,
			wantShared: true,
			wantReply:  "이 포트폴리오의 대표작은 이렇습니다.",
		},
		{
			name:      "실패해도 사과 문구로 200",
			chatSvc:   &fakeChatService{err: errors.New("platform timeout")},
			reqBody:   `{"message":"안녕"}`,
			wantReply: "죄송합니다. 응답 생성 중 오류가 발생했습니다.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(tc.chatSvc, &fakeAnswerService{})

			req := httptest.NewRequest(http.MethodPost, "/chat",
				bytes.NewBufferString(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)

			assert.Equal(t, 200, w.Code)
			var res struct {
				Data ChatResp `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tc.wantReply, res.Data.Reply)
			assert.Equal(t, tc.wantShared, tc.chatSvc.lastShared)
		})
	}
}

func TestHandler_GenerateChatAnswers(t *testing.T) {
	testCases := []struct {
		name      string
		answerSvc *fakeAnswerService
		wantData  map[string]any
	}{
		{
			name: "성공",
			answerSvc: &fakeAnswerService{res: map[string]any{
				"best_project": "사내 디자인 시스템 구축",
			}},
			wantData: map[string]any{
				"best_project": "사내 디자인 시스템 구축",
			},
		},
		{
			name: "JSON 추출 실패는 원문과 함께",
			answerSvc: &fakeAnswerService{err: &service.ExtractError{
				Reason:     "AI 응답에서 JSON 데이터를 찾을 수 없습니다.",
				RawContent: "죄송하지만 답변을 드릴 수 없어요.",
			}},
			wantData: map[string]any{
				"error":       "AI 응답에서 JSON 데이터를 찾을 수 없습니다.",
				"raw_content": "죄송하지만 답변을 드릴 수 없어요.",
			},
		},
		{
			name:      "호출 실패도 200 에 error 필드",
			answerSvc: &fakeAnswerService{err: errors.New("upstream llm failure")},
			wantData: map[string]any{
				"error": "upstream llm failure",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(&fakeChatService{}, tc.answerSvc)

			req := httptest.NewRequest(http.MethodPost, "/generate-chat-answers",
				bytes.NewBufferString(`{"portfolio_context":"{}"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)

			assert.Equal(t, 200, w.Code)
			var res struct {
				Data map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}
