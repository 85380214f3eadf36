package record

import (
	"context"
	"errors"
	"testing"

	"github.com/pofo-ai/pofo/internal/ai/internal/domain"
	"github.com/pofo-ai/pofo/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	saved []domain.LLMRecord
	err   error
}

func (f *fakeLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	f.saved = append(f.saved, l)
	return int64(len(f.saved)), f.err
}

func (f *fakeLogRepo) RecentLogs(ctx context.Context, limit int) ([]domain.LLMRecord, error) {
	return f.saved, nil
}

func TestHandlerBuilder_Next(t *testing.T) {
	req := domain.LLMRequest{
		Tid:   "tid-123",
		Uid:   7,
		Biz:   domain.BizAutoGenerate,
		Input: []string{"이름:김포포 직무:백엔드"},
		Config: domain.BizConfig{
			Biz:   domain.BizAutoGenerate,
			Model: "gemini-flash-latest",
		},
	}

	t.Run("성공 시 답변과 함께 기록", func(t *testing.T) {
		repo := &fakeLogRepo{}
		h := NewHandler(repo).Next(handler.HandleFunc(
			func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{Tokens: 120, Answer: "생성된 답변"}, nil
			}))

		resp, err := h.Handle(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "생성된 답변", resp.Answer)

		require.Len(t, repo.saved, 1)
		got := repo.saved[0]
		assert.Equal(t, "tid-123", got.Tid)
		assert.Equal(t, int64(7), got.Uid)
		assert.Equal(t, domain.BizAutoGenerate, got.Biz)
		assert.Equal(t, "gemini-flash-latest", got.Model)
		assert.Equal(t, domain.RecordStatusSuccess, got.Status)
		assert.Equal(t, "생성된 답변", got.Answer)
	})

	t.Run("실패 시 실패 상태로 기록", func(t *testing.T) {
		repo := &fakeLogRepo{}
		h := NewHandler(repo).Next(handler.HandleFunc(
			func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{}, errors.New("업스트림 오류")
			}))

		_, err := h.Handle(context.Background(), req)
		require.Error(t, err)

		require.Len(t, repo.saved, 1)
		assert.Equal(t, domain.RecordStatusFailed, repo.saved[0].Status)
		assert.Empty(t, repo.saved[0].Answer)
	})

	t.Run("기록 실패는 호출 결과에 영향 없음", func(t *testing.T) {
		repo := &fakeLogRepo{err: errors.New("저장 실패")}
		h := NewHandler(repo).Next(handler.HandleFunc(
			func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{Answer: "답변"}, nil
			}))

		resp, err := h.Handle(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "답변", resp.Answer)
	})
}
