package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "BUDGET_"

type Postgres struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"user"`
	Password string `koanf:"password"`
}

type Insights struct {
	Timezone  string `koanf:"timezone"`
	Currency  string `koanf:"currency"`
	Lookback  int    `koanf:"lookback"`
	RulesPath string `koanf:"rules"`
}

type HTTP struct {
	Port string `koanf:"port"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Operator struct {
	Workers int `koanf:"workers"`
}

type Config struct {
	Postgres Postgres `koanf:"postgres"`
	HTTP     HTTP     `koanf:"http"`
	Log      Log      `koanf:"log"`
	Insights Insights `koanf:"insights"`
	Operator Operator `koanf:"operator"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres.address":  "localhost",
	"postgres.port":     "5433",
	"postgres.db":       "postgres",
	"postgres.user":     "postgres",
	"postgres.password": "testpassword",
	"http.port":         "9446",
	"log.level":         "info",
	"insights.timezone": "UTC",
	"insights.currency": "EUR",
	"insights.lookback": 6,
	"insights.rules":    "",
	"operator.workers":  1,
}

// Load layers defaults, the optional YAML file at path and BUDGET_* environment
// variables, in that order. A .env file in the working directory is loaded into
// the environment first when present. BUDGET_POSTGRES_PORT maps to postgres.port.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func (c *Config) Validate() error {
	if c.Insights.Lookback < 1 {
		return fmt.Errorf("config: insights.lookback must be positive, got %d", c.Insights.Lookback)
	}
	if c.Operator.Workers < 1 {
		return fmt.Errorf("config: operator.workers must be positive, got %d", c.Operator.Workers)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.Username, c.Postgres.Password),
		Host:     net.JoinHostPort(c.Postgres.Address, c.Postgres.Port),
		Path:     "/" + c.Postgres.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Insights.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Insights.Timezone, err)
	}
	return loc, nil
}
