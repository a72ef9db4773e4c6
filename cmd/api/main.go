package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/tomibudis/task-manager-webapp/internal/adapter/db"
	httpadapter "github.com/tomibudis/task-manager-webapp/internal/adapter/http"
	"github.com/tomibudis/task-manager-webapp/internal/adapter/http/handlers"
	httpmiddleware "github.com/tomibudis/task-manager-webapp/internal/adapter/http/middleware"
	"github.com/tomibudis/task-manager-webapp/internal/app/service"
	"github.com/tomibudis/task-manager-webapp/internal/config"
	"github.com/tomibudis/task-manager-webapp/pkg/hasher"
	"github.com/tomibudis/task-manager-webapp/pkg/token"
	"github.com/tomibudis/task-manager-webapp/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	// Collaborators are constructed once here and handed down explicitly;
	// nothing below reaches for ambient singletons.
	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	passwordHasher := hasher.NewBcrypt(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	userService := service.NewUserService(userRepository, passwordHasher)
	taskService := service.NewTaskService(taskRepository, userRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, tokens)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, userHandler, taskHandler, httpmiddleware.AuthMiddleware(tokens))

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
