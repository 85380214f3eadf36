package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// LLM 이 JSON 을 어떻게 감싸서 돌려줄지 알 수 없어서
// 우선순위를 두고 차례로 긁어낸다.
var (
	fencedJSONExpr = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	fencedExpr     = regexp.MustCompile("(?s)```\\s*(\\{.*?\\})\\s*```")
	braceExpr      = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractError 추출이나 파싱에 실패했을 때 원문을 같이 들고 간다.
// 호출자가 진단용으로 raw_content 를 내려줄 수 있게 하기 위함이다.
type ExtractError struct {
	Reason     string
	RawContent string
}

func (e *ExtractError) Error() string {
	return e.Reason
}

// ExtractJSONObject 우선순위: ```json 펜스 → 펜스 → 중괄호
func ExtractJSONObject(content string) (string, bool) {
	if m := fencedJSONExpr.FindStringSubmatch(content); m != nil {
		return m[1], true
	}
	if m := fencedExpr.FindStringSubmatch(content); m != nil {
		return m[1], true
	}
	if m := braceExpr.FindString(content); m != "" {
		return m, true
	}
	return "", false
}

// ParseJSONObject 추출 후 파싱까지. 실패는 *ExtractError 로 돌아온다
func ParseJSONObject(content string) (map[string]any, error) {
	raw, ok := ExtractJSONObject(content)
	if !ok {
		return nil, &ExtractError{
			Reason:     "AI 응답에서 JSON 데이터를 찾을 수 없습니다.",
			RawContent: content,
		}
	}
	var res map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &res); err != nil {
		return nil, &ExtractError{
			Reason:     fmt.Sprintf("JSON 형식이 올바르지 않습니다: %s", err.Error()),
			RawContent: content,
		}
	}
	return res, nil
}
