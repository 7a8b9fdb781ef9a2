package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klwxsrx/adoption-portal/data/sql/credential"
	"github.com/klwxsrx/adoption-portal/internal/auth"
	"github.com/klwxsrx/adoption-portal/internal/auth/infra/file"
	authredis "github.com/klwxsrx/adoption-portal/internal/auth/infra/redis"
	authsql "github.com/klwxsrx/adoption-portal/internal/auth/infra/sql"
	"github.com/klwxsrx/adoption-portal/pkg/cmd"
	"github.com/klwxsrx/adoption-portal/pkg/env"
	"github.com/klwxsrx/adoption-portal/pkg/http"
	"github.com/klwxsrx/adoption-portal/pkg/lazy"
	"github.com/klwxsrx/adoption-portal/pkg/log"
	"github.com/klwxsrx/adoption-portal/pkg/redis"
	"github.com/klwxsrx/adoption-portal/pkg/sql"
	pkgtime "github.com/klwxsrx/adoption-portal/pkg/time"
)

const (
	CredentialStoreMemory = "memory"
	CredentialStoreFile   = "file"
	CredentialStoreRedis  = "redis"
	CredentialStoreSQL    = "sql"

	defaultCredentialFile = "adoption-portal/credentials.json"
)

type Config struct {
	ListenAddress   string
	CredentialStore string
	CredentialFile  string
}

type InfrastructureContainer struct {
	HTTPServer      lazy.Loader[http.Server]
	CredentialStore lazy.Loader[auth.CredentialStore]
	DBMigrations    lazy.Loader[SQLMigrations]
	DB              lazy.Loader[sql.Database]
	Redis           lazy.Loader[*redis.Client]
	Clock           lazy.Loader[pkgtime.Clock]
	Logger          lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context, config Config) *InfrastructureContainer {
	logger := loggerProvider()
	clock := clockProvider()

	db := sqlDatabaseProvider(ctx, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	redisClient := redisClientProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:      httpServerProvider(config, logger),
		CredentialStore: credentialStoreProvider(config, db, dbMigrations, redisClient, clock, logger),
		DBMigrations:    dbMigrations,
		DB:              db,
		Redis:           redisClient,
		Clock:           clock,
		Logger:          logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.Redis.IfLoaded(func(client *redis.Client) { client.Close(ctx) })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return cmd.InitLogger(), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewClock(), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		return cmd.MustInitSQL(ctx, logger.MustLoad()), nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func redisClientProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[*redis.Client] {
	return lazy.New(func() (*redis.Client, error) {
		return cmd.MustInitRedis(ctx, logger.MustLoad()), nil
	})
}

func credentialStoreProvider(
	config Config,
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[SQLMigrations],
	redisClient lazy.Loader[*redis.Client],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) lazy.Loader[auth.CredentialStore] {
	return lazy.New(func() (auth.CredentialStore, error) {
		kind := config.CredentialStore
		if kind == "" {
			kind = env.Must(env.ParseDefault("CREDENTIAL_STORE", CredentialStoreFile))
		}
		logger.MustLoad().WithField("credentialStore", kind).Info(context.Background(), "credential store selected")

		switch kind {
		case CredentialStoreMemory:
			return auth.NewMemoryStore(), nil
		case CredentialStoreFile:
			path, err := credentialFilePath(config.CredentialFile)
			if err != nil {
				return nil, err
			}
			store, err := file.NewStore(path)
			if err != nil {
				return nil, fmt.Errorf("open credential file: %w", err)
			}
			return store, nil
		case CredentialStoreRedis:
			prefix := env.Must(env.ParseDefault("REDIS_CREDENTIAL_KEY_PREFIX", authredis.DefaultKeyPrefix))
			return authredis.NewStore(redisClient.MustLoad(), prefix), nil
		case CredentialStoreSQL:
			dbMigrations.MustLoad().MustRegister(credential.Migrations)
			return authsql.NewStore(db.MustLoad(), clock.MustLoad()), nil
		default:
			return nil, fmt.Errorf("unknown credential store %q", kind)
		}
	})
}

// credentialFilePath prefers the explicit path, then CREDENTIAL_FILE, then a file in the
// user config directory.
func credentialFilePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	path, err := env.ParseDefault("CREDENTIAL_FILE", "")
	if err != nil || path != "" {
		return path, err
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve credential file: %w", err)
	}
	return filepath.Join(dir, defaultCredentialFile), nil
}

func httpServerProvider(
	config Config,
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := config.ListenAddress
		if address == "" {
			address = http.DefaultServerAddress
		}

		return http.NewServer(
			address,
			http.WithRequestIDs(logger.MustLoad()),
			http.WithHealthCheck(),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}
