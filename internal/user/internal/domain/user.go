package domain

type User struct {
	Id       int64
	Email    string
	Password string
	Name     string
	// PortfolioData 직렬화된 포트폴리오 문서. 없으면 빈 문자열이다.
	// 내부 구조 검증은 하지 않는다.
	PortfolioData string
}

type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderKakao  Provider = "kakao"
	ProviderNaver  Provider = "naver"
)

// SentinelPassword 소셜 전용 계정의 비밀번호 자리에 들어가는 표식.
// bcrypt 해시 형태가 아니라서 로컬 로그인 검증을 절대 통과하지 못한다.
func (p Provider) SentinelPassword() string {
	switch p {
	case ProviderGoogle:
		return "SOCIAL_GOOGLE"
	case ProviderKakao:
		return "SOCIAL_KAKAO"
	case ProviderNaver:
		return "SOCIAL_NAVER"
	}
	return "SOCIAL_UNKNOWN"
}

// SocialInfo 제공자 검증을 통과한 신원 정보
type SocialInfo struct {
	Provider Provider
	Email    string
	Name     string
}
