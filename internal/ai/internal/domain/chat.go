package domain

// ChatRequest 대화 요청. 서버는 대화 이력을 들고 있지 않기 때문에
// 맥락은 호출자가 PortfolioContext 로 넘겨야 한다.
type ChatRequest struct {
	Message          string
	PortfolioContext string
	// Shared 가 true 면 공유 페이지의 도슨트(무무) 모드
	Shared bool
}
