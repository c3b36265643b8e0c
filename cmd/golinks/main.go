package main

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tempizhere/golinks/internal/app"
	"github.com/tempizhere/golinks/internal/config"
	grpcapi "github.com/tempizhere/golinks/internal/grpc"
	"github.com/tempizhere/golinks/internal/grpc/proto"
	"github.com/tempizhere/golinks/internal/log"
	"github.com/tempizhere/golinks/internal/middleware"
	"github.com/tempizhere/golinks/internal/repository"
	"github.com/tempizhere/golinks/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// Получаем конфигурацию и логгер
	cfg := config.NewConfig()
	logger := log.NewLogger()
	defer func() {
		_ = logger.Sync()
	}()

	// Подключаемся к базе данных; без DSN работаем на хранилище в памяти
	db, err := app.NewDB(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	var repo repository.Repository
	if db != nil {
		defer func() {
			_ = db.Close()
		}()
		pg, err := repository.NewPostgresRepository(db, logger)
		if err != nil {
			logger.Fatal("Failed to create repository", zap.Error(err))
		}
		repo = pg
	} else {
		logger.Warn("Database DSN is empty, using in-memory repository")
		repo = repository.NewMemoryRepository()
	}

	svc := service.NewService(repo, cfg.BaseURL, cfg.CodeLength, logger)
	appInstance := app.NewApp(svc, db, logger)

	// Создаём маршрутизатор
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)

	// Публичные маршруты
	r.Get("/ping", appInstance.HandlePing)
	r.Get("/{shortcode}", appInstance.HandleRedirect)

	// API управления закрыт Bearer-токеном
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.APIToken, logger))
		r.Post("/links", appInstance.HandleCreateLink)
		r.Get("/links", appInstance.HandleListLinks)
		r.Get("/links/{shortcode}", appInstance.HandleGetLink)
		r.Patch("/links/{shortcode}", appInstance.HandleUpdateLink)
		r.Delete("/links/{shortcode}", appInstance.HandleDeleteLink)
		r.Get("/shortcodes", appInstance.HandleListShortcodes)
	})

	// Запускаем gRPC сервер, если настроен адрес
	if cfg.GRPCAddr != "" {
		go func() {
			listener, err := net.Listen("tcp", cfg.GRPCAddr)
			if err != nil {
				logger.Error("Failed to listen gRPC address", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
				return
			}
			grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
				grpcapi.LoggingInterceptor(logger),
				grpcapi.AuthInterceptor(cfg.APIToken, logger),
			))
			proto.RegisterLinkServiceServer(grpcServer, grpcapi.NewServer(svc, db, logger))
			logger.Info("Starting gRPC server", zap.String("addr", cfg.GRPCAddr))
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("gRPC server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RunAddr))
	if err := http.ListenAndServe(cfg.RunAddr, r); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
