package ioc

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/pofo-ai/pofo/internal/admin"
	"github.com/pofo-ai/pofo/internal/notice"
	"github.com/pofo-ai/pofo/internal/pkg/middleware"
)

type AdminServer *egin.Component

func InitAdminServer(
	adminHdl *admin.AdminHandler,
	noticeAdminHdl *notice.AdminHandler,
) AdminServer {
	res := egin.Load("server.admin").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "pofo.ai")
		},
	}))
	// 관리자 이메일 목록 검사
	emails := strings.Split(econf.GetString("admin.emails"), ",")
	res.Use(middleware.NewCheckAdminMiddlewareBuilder(emails).Build())
	adminHdl.PrivateRoutes(res.Engine)
	noticeAdminHdl.PrivateRoutes(res.Engine)
	return res
}
