package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sundialapp/sundial-backend/internal/db"
	"github.com/sundialapp/sundial-backend/internal/http/middleware"
	"github.com/sundialapp/sundial-backend/internal/observability"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	shutdownTracing func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()

	dbs, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbs.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := dbs.DB()

	shutdownTracing, err := observability.SetupTracing(context.Background())
	if err != nil {
		log.Warn("tracing setup failed, continuing without it", "error", err)
		shutdownTracing = nil
	}

	reposet := wireRepos(theDB, log)
	serviceset, err := wireServices(log, cfg, reposet)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, reposet, serviceset)
	authMW := middleware.NewAuthMiddleware(log, serviceset.Auth)
	router := wireRouter(handlerset, authMW)

	return &App{
		Log:             log,
		DB:              theDB,
		Router:          router,
		Cfg:             cfg,
		Repos:           reposet,
		Services:        serviceset,
		shutdownTracing: shutdownTracing,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting HTTP server", "addr", a.Cfg.HTTPAddr)
	return a.Router.Run(a.Cfg.HTTPAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Services.Limiter != nil {
		_ = a.Services.Limiter.Close()
	}
	if a.shutdownTracing != nil {
		_ = a.shutdownTracing(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
