package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/pofo-ai/pofo/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

// fail 상태 코드가 200 이 아닌 응답. 본문은 직접 쓰고
// ginx 에게는 더 쓸 게 없다고 알린다.
func fail(ctx *ginx.Context, status int, code errs.ErrorCode) (ginx.Result, error) {
	ctx.PureJSON(status, ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	})
	return ginx.Result{}, ginx.ErrNoResponse
}

func badRequest(ctx *ginx.Context, code errs.ErrorCode) (ginx.Result, error) {
	return fail(ctx, http.StatusBadRequest, code)
}
