package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	driver "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/catalog-system/internal/api"
	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/infrastructure/config"
	mongodb "github.com/storelane/catalog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/storelane/catalog-system/internal/infrastructure/db/redis"
	"github.com/storelane/catalog-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Open(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Open(ctx, cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := bootstrap(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap database")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting catalog api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}

// bootstrap creates indexes, seeds the well-known roles, and optionally
// creates the configured admin account. Seeding admin before worker keeps
// the conventional role ids (admin=1, worker=2) on a fresh database.
func bootstrap(ctx context.Context, db *driver.Database, cfg *config.Config, log zerolog.Logger) error {
	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db, roleRepo)
	productRepo := mongodb.NewProductRepository(db)

	for _, ensure := range []func(context.Context) error{
		roleRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
		productRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	var adminRole *domain.Role
	for _, name := range []string{domain.RoleAdmin, domain.RoleWorker} {
		role, err := roleRepo.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if role == nil {
			role, err = roleRepo.Create(ctx, name)
			if err != nil {
				return err
			}
			log.Info().Int64("role_id", role.ID).Str("name", name).Msg("role seeded")
		}
		if name == domain.RoleAdmin {
			adminRole = role
		}
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	existing, err := userRepo.FindByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin, err := userRepo.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}
	if err := userRepo.SyncRoles(ctx, admin.ID, []domain.Role{*adminRole}); err != nil {
		return err
	}

	log.Info().Int64("user_id", admin.ID).Str("email", admin.Email).Msg("admin account bootstrapped")
	return nil
}
