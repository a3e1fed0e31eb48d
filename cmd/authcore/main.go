package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vndocs/authcore/internal/pkg/config"
	"github.com/vndocs/authcore/internal/pkg/database"
	jwtpkg "github.com/vndocs/authcore/internal/pkg/jwt"
	"github.com/vndocs/authcore/internal/pkg/logger"
	"github.com/vndocs/authcore/internal/pkg/mail"
	"github.com/vndocs/authcore/services/auth"
	"github.com/vndocs/authcore/services/auth/repository"
	"github.com/vndocs/authcore/services/auth/usecase"
)

func main() {
	appName := "authcore"
	configPath := config.GetEnv("CONFIG_PATH", "config/authcore.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment),
	)

	db, err := database.NewPostgresDB(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer db.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	issuer, err := jwtpkg.NewIssuer(configs.JWT)
	if err != nil {
		logger.Fatal("Failed to initialize token issuer", logger.Err(err))
	}

	mailClient, err := mail.NewClient(configs.Mail)
	if err != nil {
		logger.Fatal("Failed to initialize mail client", logger.Err(err))
	}

	authRepo := repository.NewAuthRepo(configs, db, redisClient)
	authUC := usecase.NewAuthUC(configs, authRepo, authRepo, authRepo, authRepo, mailClient, issuer)

	logger.Info("Auth core ready", logger.String("app", appName))

	// Ledger hygiene: expired session rows are pruned on a fixed interval.
	// Token records in Redis self-expire and need no sweeping.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runPruneLoop(ctx, authUC)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down", logger.String("app", appName))
}

func runPruneLoop(ctx context.Context, authUC auth.AuthUC) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := authUC.PruneSessions(ctx); err != nil {
				logger.WithError(err).Warn("session prune failed")
			}
		}
	}
}
