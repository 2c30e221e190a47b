// Command seed ensures the default superadmin account exists so a fresh
// deployment can be administered immediately.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
	"github.com/braizerecords/label-api/internal/core/service"
	"github.com/braizerecords/label-api/internal/infrastructure/config"
	mongodb "github.com/braizerecords/label-api/internal/infrastructure/db/mongo"
	"github.com/braizerecords/label-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool := mongodb.NewPool(mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	db, err := pool.Database(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := pool.Close(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	perms := make([]string, 0, len(domain.AllPermissions()))
	for _, p := range domain.AllPermissions() {
		perms = append(perms, string(p))
	}

	users := service.NewUserService(repo, service.NewIdentityService(cfg.JWTSecret, 0), nil)
	admin, err := users.Create(ctx, ports.CreateUserInput{
		Email:       cfg.Admin.Email,
		Name:        cfg.Admin.Name,
		Password:    cfg.Admin.Password,
		Role:        string(domain.RoleSuperadmin),
		Permissions: perms,
	})
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		log.Info().Str("email", cfg.Admin.Email).Msg("superadmin already present, nothing to do")
	case err != nil:
		log.Fatal().Err(err).Msg("superadmin creation failed")
	default:
		log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("superadmin created")
	}
}
