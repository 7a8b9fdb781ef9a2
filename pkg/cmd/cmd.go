package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/adoption-portal/pkg/env"
	"github.com/klwxsrx/adoption-portal/pkg/log"
	"github.com/klwxsrx/adoption-portal/pkg/redis"
	"github.com/klwxsrx/adoption-portal/pkg/sql"
)

// InitLogger reads LOG_LEVEL, falling back to info when it is missing or unknown.
func InitLogger(opts ...log.Option) log.Logger {
	logLevelStr, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return log.New(log.LevelInfo, opts...)
	}

	logLevel, ok := log.ParseLevel(logLevelStr)
	if !ok {
		logLevel = log.LevelInfo
	}

	return log.New(logLevel, opts...)
}

func MustInitSQL(ctx context.Context, logger log.Logger) sql.Database {
	sqlConfig := sql.Config{
		DSN: sql.DSN{
			User:     env.Must(env.Parse[string]("SQL_USER")),
			Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
			Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
			Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			SSLMode:  env.Must(env.ParseDefault("SQL_SSL_MODE", "")),
		},
	}
	sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
	if sqlConnTimeout != nil {
		sqlConfig.ConnectionTimeout = *sqlConnTimeout
	}

	db, err := sql.NewDatabase(ctx, sqlConfig, logger)
	if err != nil {
		panic(fmt.Errorf("open sql connection: %w", err))
	}

	return db
}

func MustInitRedis(ctx context.Context, logger log.Logger) *redis.Client {
	config := redis.Config{
		Address:  env.Must(env.Parse[string]("REDIS_ADDRESS")),
		Password: env.Must(env.ParseDefault("REDIS_PASSWORD", "")),
		DB:       env.Must(env.ParseDefault("REDIS_DB", 0)),
	}
	connTimeout := env.Must(env.ParseOptional[time.Duration]("REDIS_CONNECTION_TIMEOUT"))
	if connTimeout != nil {
		config.ConnectionTimeout = *connTimeout
	}

	client, err := redis.NewClient(ctx, config, logger)
	if err != nil {
		panic(fmt.Errorf("open redis connection: %w", err))
	}

	return client
}
