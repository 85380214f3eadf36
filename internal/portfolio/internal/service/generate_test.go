package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pofo-ai/pofo/internal/ai"
	aimocks "github.com/pofo-ai/pofo/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerateService_Generate(t *testing.T) {
	answers := map[string]string{
		"name":           "Kim",
		"job":            "Backend",
		"strength":       "Go",
		"moods":          "minimal",
		"career_summary": "3y",
		"project1_title": "API",
	}

	t.Run("응답을 문서로 변환", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		llmSvc := aimocks.NewMockService(ctrl)
		llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				assert.Equal(t, ai.BizAutoGenerate, req.Biz)
				assert.Equal(t, []string{
					"Kim", "Backend", "Go", "minimal", "3y",
					"- 프로젝트 1: API\n",
				}, req.Input)
				return ai.LLMResponse{Answer: "```json\n" + `{
  "theme": {"color": "#112233", "font": "sans", "mood_emoji": "🚀", "layout": "gallery_grid"},
  "hero": {"title": "백엔드 개발자 Kim", "subtitle": "3년차", "tags": ["Go"]},
  "about": {"intro": "소개", "description": "내용"},
  "projects": [{"title": "API", "desc": "설명", "detail": "상세", "tags": ["Go"]}],
  "contact": {"email": "kim@b.com", "github": "https://github.com/kim"}
}` + "\n```"}, nil
			})

		svc := NewGenerateService(llmSvc)
		doc, err := svc.Generate(context.Background(), answers)
		require.NoError(t, err)
		assert.Equal(t, "#112233", doc.Theme.Color)
		require.Len(t, doc.Projects, 1)
		assert.Equal(t, "API", doc.Projects[0].Title)
	})

	t.Run("모델 호출 실패", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		llmSvc := aimocks.NewMockService(ctrl)
		llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			Return(ai.LLMResponse{}, errors.New("업스트림 오류"))

		svc := NewGenerateService(llmSvc)
		_, err := svc.Generate(context.Background(), answers)
		require.Error(t, err)
	})

	t.Run("JSON 이 아닌 응답", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		llmSvc := aimocks.NewMockService(ctrl)
		llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			Return(ai.LLMResponse{Answer: "죄송합니다. 생성할 수 없습니다."}, nil)

		svc := NewGenerateService(llmSvc)
		_, err := svc.Generate(context.Background(), answers)
		require.Error(t, err)
	})
}

func TestBuildProjects(t *testing.T) {
	testCases := []struct {
		name    string
		answers map[string]string
		want    string
	}{
		{
			name: "일반 직군은 3칸 트랙",
			answers: map[string]string{
				"job":            "백엔드 개발자",
				"project1_title": "API 서버",
				"project2_title": "배치 파이프라인",
				// 6칸 트랙 필드는 읽지 않는다
				"design_project1_title": "무시되어야 함",
			},
			want: "- 프로젝트 1: API 서버\n- 프로젝트 2: 배치 파이프라인\n",
		},
		{
			name: "디자인 직군은 6칸 트랙",
			answers: map[string]string{
				"job":                   "UX 디자인",
				"design_project1_title": "브랜딩",
				"design_project6_title": "포스터",
				"project1_title":        "무시되어야 함",
			},
			want: "- 작품 1: 브랜딩\n- 작품 6: 포스터\n",
		},
		{
			name: "영문 Designer 표기도 6칸 트랙",
			answers: map[string]string{
				"job":                   "Product Designer",
				"design_project2_title": "앱 리디자인",
			},
			want: "- 작품 2: 앱 리디자인\n",
		},
		{
			name:    "제목이 하나도 없으면 빈 문자열",
			answers: map[string]string{"job": "기획"},
			want:    "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildProjects(tc.answers))
		})
	}
}

func TestParseDocument(t *testing.T) {
	raw := `{"hero": {"title": "제목"}, "projects": []}`
	testCases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "json 펜스", content: "```json\n" + raw + "\n```"},
		{name: "태그 없는 펜스", content: "```\n" + raw + "\n```"},
		{name: "펜스 없음", content: "앞 설명 " + raw},
		{name: "깨진 JSON", content: "{\"hero\": ", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := parseDocument(tc.content)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "제목", doc.Hero.Title)
		})
	}
}
