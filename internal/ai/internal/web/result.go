package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/pofo-ai/pofo/internal/ai/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
