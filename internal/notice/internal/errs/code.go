package errs

var (
	SystemError = ErrorCode{Code: 520001, Msg: "시스템 오류"}
	ListFailed  = ErrorCode{Code: 520002, Msg: "공지사항 조회 실패"}
	SaveFailed  = ErrorCode{Code: 520003, Msg: "공지사항 저장 실패"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
