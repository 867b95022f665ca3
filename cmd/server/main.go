package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/arleti/materials-system/internal/api"
	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
	"github.com/arleti/materials-system/internal/core/service"
	"github.com/arleti/materials-system/internal/infrastructure/crypto"
	mongodb "github.com/arleti/materials-system/internal/infrastructure/db/mongo"
	redisdb "github.com/arleti/materials-system/internal/infrastructure/db/redis"
	"github.com/arleti/materials-system/internal/infrastructure/queue"
	"github.com/arleti/materials-system/internal/pkg/config"
	"github.com/arleti/materials-system/pkg/logger"
)

// @title           Materials Inventory API
// @version         1.0
// @description     Internal materials tracking with admin-approved worker accounts.
// @BasePath        /
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	accountRepo := mongodb.NewAccountRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err := bootstrapAdmin(ctx, cfg, accountRepo, hasher, log); err != nil {
		log.Fatal().Err(err).Msg("administrator bootstrap failed")
	}

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(cfg.Auth.AuditWorkers, service.NewAuditService(auditRepo, log), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, auditRepo, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// bootstrapAdmin seeds the configured administrator account if it does not
// exist yet. Losing the insert race to a concurrent replica is fine; the
// unique email index guarantees a single winner.
func bootstrapAdmin(ctx context.Context, cfg *config.Config, repo ports.AccountRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	email, password := cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword
	if email == "" || password == "" {
		return nil
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	created, err := repo.Create(ctx, &domain.Account{
		Email:          email,
		CredentialHash: hash,
		Role:           domain.RoleAdmin,
		Status:         domain.StatusActive,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return err
	}

	log.Info().Str("email", created.Email).Msg("administrator account created")
	return nil
}
