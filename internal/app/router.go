package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/sundialapp/sundial-backend/internal/http/middleware"
)

func wireRouter(h Handlers, authMW *middleware.AuthMiddleware) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("sundial-backend"))

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Time-Zone"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", h.Health.HealthCheck)

	api := router.Group("/api")
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	protected := api.Group("/")
	protected.Use(authMW.RequireAuth())
	protected.POST("/checkins", h.CheckIn.Create)
	protected.GET("/checkins", h.CheckIn.List)
	protected.GET("/insights/context", h.Insight.GetContext)
	protected.POST("/coach/reply", h.Coach.Reply)

	return router
}
