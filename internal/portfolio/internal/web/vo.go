package web

import (
	"encoding/json"

	"github.com/pofo-ai/pofo/internal/portfolio/internal/domain"
)

type SubmitReq struct {
	Answers map[string]string `json:"answers"`
}

// SubmitResp 생성 요청은 실패해도 200 으로 내려간다.
// 프런트는 status 필드만 보고 분기한다.
type SubmitResp struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    *domain.Document `json:"data,omitempty"`
}

type SaveReq struct {
	Email         string          `json:"email"`
	PortfolioData json.RawMessage `json:"portfolio_data"`
}

type GetResp struct {
	PortfolioData json.RawMessage `json:"portfolio_data"`
}
