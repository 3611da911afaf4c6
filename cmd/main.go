package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tournify/tournament-manager/config"
	"github.com/tournify/tournament-manager/db"
	"github.com/tournify/tournament-manager/handlers"
	"github.com/tournify/tournament-manager/realtime"
	"github.com/tournify/tournament-manager/repositories"
	api "github.com/tournify/tournament-manager/routes"
	"github.com/tournify/tournament-manager/services"
)

// @title Tournament Manager API
// @version 1.0
// @description Round-robin scheduling, score submission and pool standings.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.Bool("auto_migrate", cfg.AutoMigrate))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established", slog.String("driver", dbConn.DriverName()))

	if cfg.AutoMigrate {
		if err := db.Migrate(dbConn); err != nil {
			logger.Error("failed to apply migrations", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// WebSocket Hub
	wsHub := realtime.NewHub(logger)
	go wsHub.Run(ctx)

	// Репозитории
	matchRepo := repositories.NewMatchRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	poolRepo := repositories.NewPoolRepository(dbConn)
	fieldRepo := repositories.NewFieldRepository(dbConn)
	tournamentRepo := repositories.NewTournamentRepository(dbConn)
	transactor := db.NewTransactor(dbConn)

	// Сервисы
	matchService := services.NewMatchService(transactor, matchRepo, teamRepo, poolRepo, wsHub, logger)
	standingsService := services.NewStandingsService(teamRepo, matchRepo, tournamentRepo)
	poolService := services.NewPoolService(transactor, poolRepo, teamRepo, logger)
	fieldService := services.NewFieldService(fieldRepo)
	teamService := services.NewTeamService(teamRepo)

	// Маршрутизатор
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Match:     handlers.NewMatchHandler(matchService),
		Pool:      handlers.NewPoolHandler(poolService, standingsService),
		Team:      handlers.NewTeamHandler(teamService),
		Field:     handlers.NewFieldHandler(fieldService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
	}, cfg.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
			os.Exit(1)
		}
		logger.Info("server stopped")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		// Shutdown does not wait for hijacked websocket connections; stopping the hub closes them.
		stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
