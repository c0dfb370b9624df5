// Package routesはroutingを行います。
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"go-firebase-todo/backend/internal/config"
	"go-firebase-todo/backend/internal/handlers"
	"go-firebase-todo/backend/internal/repositories"
	"go-firebase-todo/backend/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
// 検証器とストアは注入されるため、テストではフェイクに差し替えられます。
func SetupRouter(
	cfg *config.Config,
	log *logrus.Logger,
	verifier TokenVerifier,
	todoStore repositories.TodoStore,
	statusStore repositories.StatusStore,
) *gin.Engine {
	r := gin.Default()

	// CORS対策
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.Use(MetricsMiddleware())

	// サービス
	todoService := services.NewTodoService(todoStore)
	statusService := services.NewStatusService(statusStore)

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoService)
	statusHandler := handlers.NewStatusHandler(statusService)
	authHandler := handlers.NewAuthHandler()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ルーティング（すべて /api 以下）
	api := r.Group("/api")
	api.GET("/", handlers.RootHandler)
	api.POST("/status", statusHandler.CreateStatusHandler)
	api.GET("/status", statusHandler.GetStatusHandler)

	authorized := api.Group("/")
	authorized.Use(AuthMiddleware(verifier, log))
	{
		authorized.GET("/auth/me", authHandler.MeHandler)
		authorized.GET("/todos", todoHandler.GetTodosHandler)
		authorized.GET("/todos/:id", todoHandler.GetTodoByIDHandler)
		authorized.POST("/todos", todoHandler.CreateTodoHandler)
		authorized.PUT("/todos/:id", todoHandler.UpdateTodoHandler)
		authorized.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)
	}

	return r
}
