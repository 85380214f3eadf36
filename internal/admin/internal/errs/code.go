package errs

var (
	SystemError = ErrorCode{Code: 521001, Msg: "시스템 오류"}
	StatsFailed = ErrorCode{Code: 521002, Msg: "통계 조회 실패"}
	ListFailed  = ErrorCode{Code: 521003, Msg: "목록 조회 실패"}
	SaveFailed  = ErrorCode{Code: 521004, Msg: "저장 실패"}
	DeleteFail  = ErrorCode{Code: 521005, Msg: "삭제 실패"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
