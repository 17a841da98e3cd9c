package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/config"
	"github.com/standupshop/backend/internal/db"
	"github.com/standupshop/backend/internal/goroutine"
	httpHandlers "github.com/standupshop/backend/internal/http/handlers"
	httpRouter "github.com/standupshop/backend/internal/http/router"
	"github.com/standupshop/backend/internal/logger"
	"github.com/standupshop/backend/internal/repository"
	"github.com/standupshop/backend/internal/service"
	"github.com/standupshop/backend/internal/storage"
	"github.com/standupshop/backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Инициализируем вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	photoStorage, err := storage.NewPhotoStorage(cfg.MediaStoragePath, cfg.PublicBaseURL, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	orderRepo := repository.NewOrderRepository(dbConn)
	auditRepo := repository.NewAuditLogRepository(dbConn)
	showRepo := repository.NewShowRepository(dbConn)
	presaleRepo := repository.NewPresaleRepository(dbConn)
	fanCardRepo := repository.NewFanCardRepository(dbConn)
	chatRepo := repository.NewChatRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)
	maintenanceRepo := repository.NewMaintenanceRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	orderService := service.NewOrderService(orderRepo, auditRepo)
	showService := service.NewShowService(showRepo)
	presaleService := service.NewPresaleService(presaleRepo)
	fanCardService := service.NewFanCardService(fanCardRepo)
	chatService := service.NewChatService(chatRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo)

	// Первичный администратор создаётся в фоне, старт сервера не ждёт базу.
	if cfg.Env == "development" && cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
			if _, err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
				logger.WithComponent("main").Warnf("не удалось создать администратора: %v", err)
			}
		})
	}

	// Вебсокеты.
	hub := ws.NewHub(ctx)
	go hub.Run()

	orderService.SetHub(hub)
	chatService.SetHub(hub)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	orderHandler := httpHandlers.NewOrderHandler(orderService)
	showHandler := httpHandlers.NewShowHandler(showService)
	presaleHandler := httpHandlers.NewPresaleHandler(presaleService)
	fanCardHandler := httpHandlers.NewFanCardHandler(fanCardService)
	chatHandler := httpHandlers.NewChatHandler(chatService)
	settingsHandler := httpHandlers.NewSettingsHandler(settingsService)
	mediaHandler := httpHandlers.NewMediaHandler(photoStorage)
	wsHandler := httpHandlers.NewWSHandler(hub)
	maintenanceHandler := httpHandlers.NewMaintenanceHandler(maintenanceService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	seedHandler := httpHandlers.NewSeedHandler(authService, cfg.AdminEmail, cfg.AdminPassword)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, orderHandler, showHandler, presaleHandler, fanCardHandler, chatHandler, settingsHandler, mediaHandler, wsHandler, maintenanceHandler, healthHandler, seedHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
