package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/skirkby/node-auth2-guided-sessions/internal/config"
	"github.com/skirkby/node-auth2-guided-sessions/internal/db"
	"github.com/skirkby/node-auth2-guided-sessions/internal/logger"
	"github.com/skirkby/node-auth2-guided-sessions/internal/redis"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunKeystoneMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
	}, nil
}
