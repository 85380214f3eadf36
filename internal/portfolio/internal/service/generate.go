package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pofo-ai/pofo/internal/ai"
	"github.com/pofo-ai/pofo/internal/portfolio/internal/domain"
)

// 모델이 지시를 어기고 펜스를 붙여 보내는 경우가 실제로 있다
var braceExpr = regexp.MustCompile(`(?s)\{.*\}`)

//go:generate mockgen -source=./generate.go -package=svcmocks -destination=mocks/generate.mock.go GenerateService
type GenerateService interface {
	// Generate 설문 답변으로 포트폴리오 문서를 만들어 낸다
	Generate(ctx context.Context, answers map[string]string) (domain.Document, error)
}

type generateService struct {
	llmSvc ai.LLMService
}

func NewGenerateService(llmSvc ai.LLMService) GenerateService {
	return &generateService{
		llmSvc: llmSvc,
	}
}

func (s *generateService) Generate(ctx context.Context, answers map[string]string) (domain.Document, error) {
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizAutoGenerate,
		Tid:   shortuuid.New(),
		Input: buildInput(answers),
	})
	if err != nil {
		return domain.Document{}, err
	}
	return parseDocument(resp.Answer)
}

// buildInput 자동 생성 프롬프트 틀의 여섯 자리에 맞춰 입력을 만든다
func buildInput(answers map[string]string) []string {
	return []string{
		answers["name"],
		answers["job"],
		answers["strength"],
		answers["moods"],
		answers["career_summary"],
		buildProjects(answers),
	}
}

// buildProjects 직무가 디자인 계열이면 작품 6개 트랙, 아니면 프로젝트 3개 트랙
func buildProjects(answers map[string]string) string {
	job := answers["job"]
	isDesigner := strings.Contains(job, "디자인") || strings.Contains(job, "Designer")
	var sb strings.Builder
	if isDesigner {
		for i := 1; i <= 6; i++ {
			title := answers[fmt.Sprintf("design_project%d_title", i)]
			if title != "" {
				sb.WriteString(fmt.Sprintf("- 작품 %d: %s\n", i, title))
			}
		}
		return sb.String()
	}
	for i := 1; i <= 3; i++ {
		title := answers[fmt.Sprintf("project%d_title", i)]
		if title != "" {
			sb.WriteString(fmt.Sprintf("- 프로젝트 %d: %s\n", i, title))
		}
	}
	return sb.String()
}

func parseDocument(content string) (domain.Document, error) {
	content = strings.TrimSpace(
		strings.ReplaceAll(strings.ReplaceAll(content, "```json", ""), "```", ""))
	if m := braceExpr.FindString(content); m != "" {
		content = m
	}
	var doc domain.Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return domain.Document{}, fmt.Errorf("생성 결과 파싱 실패: %w", err)
	}
	return doc, nil
}
