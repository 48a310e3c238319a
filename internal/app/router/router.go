package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	usershandler "users_backend/internal/feature/users/transport/handler"
	platformhandler "users_backend/internal/platform/http/handler"
)

// Options はルーター生成時の任意設定です。
type Options struct {
	CORSEnabled bool
}

func NewRouter(health *platformhandler.HealthHandler, users *usershandler.UserHandler, opts Options) *gin.Engine {
	r := gin.Default()

	if opts.CORSEnabled {
		r.Use(cors.Default())
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	v1 := r.Group("/api/v1/users")
	{
		// 一覧・取得
		v1.GET("", users.List)
		v1.GET("/:id", users.Get)
		// 作成・全体更新・削除
		v1.POST("", users.Create)
		v1.PUT("/:id", users.Update)
		v1.DELETE("/:id", users.Delete)
		// 部分更新
		v1.PATCH("/:id/name", users.Rename)
		v1.PATCH("/:id/email", users.ChangeEmail)
		v1.PATCH("/:id/password", users.ChangePassword)
	}

	return r
}
