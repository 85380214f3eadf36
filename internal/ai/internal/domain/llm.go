package domain

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

const (
	// BizAutoGenerate 온보딩 답변 기반 포트폴리오 자동 생성
	BizAutoGenerate = "auto_generate"
	// BizCoachChat 포트폴리오 코치 '포포' 챗봇
	BizCoachChat = "popo"
	// BizDocentChat 공유 포트폴리오 도슨트 '무무' 챗봇
	BizDocentChat = "mumu"
	// BizChatAnswers 예상 질문 답변 초안 생성
	BizChatAnswers = "chat_answers"
)

type LLMRequest struct {
	Biz string
	Uid int64
	// 요청 id
	Tid string
	// 사용자 입력
	Input []string
	// 시스템 프롬프트에 끼워 넣을 입력
	SystemInput []string
	Config      BizConfig

	prompt       string
	systemPrompt string
}

// Prompt PromptTemplate 과 Input 을 결합해서 만든 최종 프롬프트
func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		req.prompt = render(req.Config.PromptTemplate, req.Input)
	}
	return req.prompt
}

func (req *LLMRequest) SystemPrompt() string {
	if req.systemPrompt == "" {
		req.systemPrompt = render(req.Config.SystemPrompt, req.SystemInput)
	}
	return req.systemPrompt
}

func render(template string, input []string) string {
	if len(input) == 0 {
		return template
	}
	args := slice.Map(input, func(idx int, src string) any {
		return src
	})
	return fmt.Sprintf(template, args...)
}

type LLMResponse struct {
	// 소모한 token
	Tokens int64
	// llm 의 답변
	Answer string
}

type BizConfig struct {
	Biz string
	// 사용하는 모델
	Model       string
	Temperature float64
	TopP        float64
	// 시스템 프롬프트. SystemInput 이 있으면 %s 로 결합한다
	SystemPrompt string
	// 사용자 프롬프트 템플릿. 보통 %s 를 쓴다
	PromptTemplate string
}

// LLMRecord 호출 한 번에 한 줄씩 쌓이는 사용 로그
type LLMRecord struct {
	Id     int64
	Tid    string
	Uid    int64
	Biz    string
	Model  string
	Input  []string
	Status RecordStatus
	Answer string
	Ctime  int64
	Utime  int64
}

type RecordStatus uint8

func (s RecordStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
