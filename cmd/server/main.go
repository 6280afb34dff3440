package main

import (
	"context"
	"time"

	"github.com/klorpe/accountpool/internal/api"
	"github.com/klorpe/accountpool/internal/api/metrics"
	"github.com/klorpe/accountpool/internal/core/service"
	"github.com/klorpe/accountpool/internal/infrastructure/config"
	"github.com/klorpe/accountpool/internal/infrastructure/db/jsonfile"
	"github.com/klorpe/accountpool/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	repo, err := jsonfile.NewAccountRepository(cfg.Store.DataFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.DataFile).Msg("failed to open account store")
	}

	authService, err := service.NewAuthService(
		cfg.Auth.AdminUsername,
		cfg.Auth.AdminPassword,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build auth service")
	}

	accountService := service.NewAccountService(repo, log)
	throttle := service.NewLoginThrottle(
		cfg.Throttle.MaxAttempts,
		time.Duration(cfg.Throttle.LockoutMinutes)*time.Minute,
	)

	ctx := context.Background()
	accountService.Bootstrap(ctx, cfg.Store.AccountsFile, cfg.Store.AccountsTxt)
	if accounts, err := repo.ListAll(ctx); err == nil {
		metrics.SetPoolSize(accounts)
	}

	e := api.NewRouter(api.Deps{
		AuthService:    authService,
		AccountService: accountService,
		AccountRepo:    repo,
		Throttle:       throttle,
	}, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting account pool server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
