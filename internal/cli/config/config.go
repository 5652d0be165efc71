package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sisgea/unispec/internal/logging"
	"github.com/sisgea/unispec/internal/snapshot"
)

// Config represents the unispec configuration
type Config struct {
	Catalog  string          `mapstructure:"catalog"`
	Output   OutputConfig    `mapstructure:"output"`
	Log      logging.Config  `mapstructure:"log"`
	Link     LinkConfig      `mapstructure:"link"`
	Snapshot snapshot.Config `mapstructure:"snapshot"`
}

// OutputConfig represents export configuration
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// LinkConfig represents reference resolution configuration
type LinkConfig struct {
	// Externals are tokens resolved outside the catalog, on top of the
	// catalog's own externals.
	Externals []string `mapstructure:"externals"`
	Strict    bool     `mapstructure:"strict"`
}

// Load loads the configuration from unispec.yml or unispec.yaml in the
// working directory. A non-empty path reads that file instead.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := snapshot.DefaultConfig()
	v.SetDefault("catalog", "sisgea")
	v.SetDefault("output.dir", "build")
	v.SetDefault("output.format", "json")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("link.externals", []string{})
	v.SetDefault("link.strict", true)
	v.SetDefault("snapshot.driver", defaults.Driver)
	v.SetDefault("snapshot.dsn", defaults.DSN)
	v.SetDefault("snapshot.redis.addr", defaults.Redis.Addr)
	v.SetDefault("snapshot.redis.password", "")
	v.SetDefault("snapshot.redis.db", 0)
	v.SetDefault("snapshot.redis.prefix", defaults.Redis.Prefix)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("unispec")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// UNISPEC_SNAPSHOT_DSN overrides snapshot.dsn
	v.SetEnvPrefix("unispec")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// FindConfigFile walks up from the working directory looking for
// unispec.yml or unispec.yaml. It returns an empty path when none exists.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range []string{"unispec.yml", "unispec.yaml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Catalog == "" {
		return fmt.Errorf("catalog must not be empty")
	}

	switch cfg.Output.Format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("output.format must be json or yaml, got: %s", cfg.Output.Format)
	}

	switch cfg.Snapshot.Driver {
	case snapshot.DriverSQLite, snapshot.DriverPostgres:
		if cfg.Snapshot.DSN == "" {
			return fmt.Errorf("snapshot.dsn is required for the %s driver", cfg.Snapshot.Driver)
		}
	case snapshot.DriverRedis:
		if cfg.Snapshot.Redis.Addr == "" {
			return fmt.Errorf("snapshot.redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("snapshot.driver must be sqlite, postgres or redis, got: %s", cfg.Snapshot.Driver)
	}

	for _, ext := range cfg.Link.Externals {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("link.externals must not contain empty tokens")
		}
	}

	return nil
}
