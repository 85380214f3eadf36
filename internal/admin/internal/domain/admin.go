package domain

// Stats 대시보드 첫 화면 숫자들
type Stats struct {
	TotalUsers      int64
	TotalPortfolios int64
	TodayPortfolios int64
	// ActiveUsers 최근 30일 안에 포트폴리오를 고친 사용자 수
	ActiveUsers int64
}

type UserProfile struct {
	Id             string
	Email          string
	Name           string
	PortfolioCount int64
	Ctime          int64
}

type PortfolioSummary struct {
	Id        string
	Title     string
	UserEmail string
	UserName  string
	Job       string
	Template  string
	Ctime     int64
}

type UserPage struct {
	Users []UserProfile
	Skip  int
	Limit int
}

type PortfolioPage struct {
	Portfolios []PortfolioSummary
	Total      int64
	Skip       int
	Limit      int
}

type BatchDeleteResult struct {
	DeletedPortfolios int64
	DeletedUsers      int64
}

// AIStats 최근 로그 표본을 묶어 센 근사 통계
type AIStats struct {
	TotalRequests int
	ByType        map[string]int
	ByModel       map[string]int
}
