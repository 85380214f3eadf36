package errs

var (
	SystemError = ErrorCode{Code: 519001, Msg: "시스템 오류"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
