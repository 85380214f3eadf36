package ioc

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/pofo-ai/pofo/internal/ai"
	"github.com/pofo-ai/pofo/internal/notice"
	"github.com/pofo-ai/pofo/internal/portfolio"
	"github.com/pofo-ai/pofo/internal/user"
)

func initGinxServer(
	userHdl *user.Handler,
	pfHdl *portfolio.Handler,
	aiHdl *ai.Handler,
	noticeHdl *notice.Handler,
) *egin.Component {
	res := egin.Load("server.web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "pofo.ai") ||
				strings.HasSuffix(origin, ".vercel.app")
		},
	}))
	res.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	userHdl.PublicRoutes(res.Engine)
	pfHdl.PublicRoutes(res.Engine)
	aiHdl.PublicRoutes(res.Engine)
	noticeHdl.PublicRoutes(res.Engine)
	return res
}
