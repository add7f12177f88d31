package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/avatar"
	"github.com/ecodeclub/mockinterview/internal/feedback"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/media"
	"github.com/ecodeclub/mockinterview/internal/pkg/middleware"
	interviewsession "github.com/ecodeclub/mockinterview/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	interviewHdl *interview.Handler,
	avatarHdl *avatar.Handler,
	mediaHdl *media.Handler,
	feedbackHdl *feedback.Handler,
	sessionHdl *interviewsession.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	origins := econf.GetStringSlice("server.web.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder("mockinterview").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	interviewHdl.PublicRoutes(res.Engine)
	avatarHdl.PublicRoutes(res.Engine)
	mediaHdl.PublicRoutes(res.Engine)
	feedbackHdl.PublicRoutes(res.Engine)
	sessionHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	interviewHdl.PrivateRoutes(res.Engine)
	avatarHdl.PrivateRoutes(res.Engine)
	mediaHdl.PrivateRoutes(res.Engine)
	feedbackHdl.PrivateRoutes(res.Engine)
	sessionHdl.PrivateRoutes(res.Engine)
	return res
}
