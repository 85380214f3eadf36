package web

type ChatReq struct {
	Message          string `json:"message"`
	PortfolioContext string `json:"portfolio_context"`
	// IsShared 조회 페이지(공유 링크)에서 온 요청이면 무무, 편집 화면이면 포포
	IsShared bool `json:"is_shared"`
}

type ChatResp struct {
	Reply string `json:"reply"`
}

type GenerateAnswersReq struct {
	PortfolioContext string `json:"portfolio_context"`
}
