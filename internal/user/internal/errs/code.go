package errs

var (
	SystemError        = ErrorCode{Code: 517001, Msg: "시스템 오류"}
	UserDuplicate      = ErrorCode{Code: 517002, Msg: "이미 등록된 이메일입니다."}
	InvalidCredentials = ErrorCode{Code: 517003, Msg: "이메일 또는 비밀번호가 틀렸습니다."}
	InvalidToken       = ErrorCode{Code: 517004, Msg: "유효하지 않은 구글 토큰입니다."}
	ProviderRejected   = ErrorCode{Code: 517005, Msg: "소셜 로그인 인증에 실패했습니다."}
	MissingEmail       = ErrorCode{Code: 517006, Msg: "이메일 정보가 없습니다."}
	UserNotFound       = ErrorCode{Code: 517007, Msg: "User not found"}
	PortfolioNotFound  = ErrorCode{Code: 517008, Msg: "Portfolio data not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
