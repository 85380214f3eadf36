package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckAdminMiddlewareBuilder 허용된 관리자 이메일만 통과시킨다.
// 인증은 Authorization 헤더의 이메일을 그대로 믿는 구조라
// 반드시 내부망 전용 관리자 서버에만 걸어야 한다.
type CheckAdminMiddlewareBuilder struct {
	allowed map[string]struct{}
	logger  *elog.Component
}

func NewCheckAdminMiddlewareBuilder(emails []string) *CheckAdminMiddlewareBuilder {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &CheckAdminMiddlewareBuilder{
		allowed: allowed,
		logger:  elog.DefaultLogger,
	}
}

func (b *CheckAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.GetHeader("Authorization")
		email = strings.TrimPrefix(email, "Bearer ")
		if email == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "인증이 필요합니다",
			})
			return
		}
		if _, ok := b.allowed[email]; !ok {
			b.logger.Warn("관리자 아닌 접근", elog.String("email", email))
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "관리자 권한이 필요합니다",
			})
			return
		}
	}
}
