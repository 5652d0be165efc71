package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// Drivers accepted by Open
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Config selects and configures a store
type Config struct {
	Driver string      `mapstructure:"driver"`
	DSN    string      `mapstructure:"dsn"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// DefaultConfig stores snapshots in a local SQLite file
func DefaultConfig() Config {
	return Config{
		Driver: DriverSQLite,
		DSN:    ".unispec/snapshots.db",
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: DefaultRedisPrefix,
		},
	}
}

// Open connects to the configured store and prepares it for use
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverSQLite:
		if err := ensureSQLiteDir(cfg.DSN); err != nil {
			return nil, err
		}
		store, err := openSQL(ctx, "sqlite3", cfg.DSN, DialectSQLite)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverPostgres:
		store, err := openSQL(ctx, "pgx", cfg.DSN, DialectPostgres)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisStore(client, cfg.Redis.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown snapshot driver: %s", cfg.Driver)
	}
}

func openSQL(ctx context.Context, driver, dsn string, dialect Dialect) (*SQLStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("snapshot.dsn is required for the %s driver", dialect)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect, err)
	}

	store := NewSQLStore(db, dialect)
	if err := store.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// ensureSQLiteDir creates the parent directory of a file backed SQLite dsn
func ensureSQLiteDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	return nil
}
