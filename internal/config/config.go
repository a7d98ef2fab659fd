package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/BurntSushi/toml"
)

const (
	PostgresPasswordEnvVar = "NOTES_POSTGRES_PASS"
	RedisPasswordEnvVar    = "NOTES_REDIS_PASS"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// storage
	StoreBackend     string `toml:"store_backend"`
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresSSLMode  string `toml:"postgres_ssl_mode"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	MongoURI         string `toml:"mongo_uri"`
	MongoDBName      string `toml:"mongo_db_name"`
	RedisHost        string `toml:"redis_host"`
	RedisPort        string `toml:"redis_port"`
	// secrets, never read from the file
	PostgresPassword string `toml:"-"`
	RedisPassword    string `toml:"-"`
	// metrics & tracing
	PrometheusMetricsHost  string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort  string `toml:"prometheus_metrics_port"`
	RateLimitAllowedPerMin int    `toml:"rate_limit_allowed_per_min"`
	TracingEnabled         bool   `toml:"tracing_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
	Testing     *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "test", "testing":
		cfg = t.Testing
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path, picks the section for env and fills in
// the secrets from the environment.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.PostgresPassword = os.Getenv(PostgresPasswordEnvVar)
	cfg.RedisPassword = os.Getenv(RedisPasswordEnvVar)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}

	if !slices.Contains(notes.Backends, c.StoreBackend) {
		errs = append(errs, fmt.Errorf("unknown store backend [%s], expected one of %v", c.StoreBackend, notes.Backends))
	}

	switch c.StoreBackend {
	case notes.BackendSQL, notes.BackendPgxPool, notes.BackendGorm:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			errs = append(errs, errors.New("postgres host, port and db name are required"))
		}
	case notes.BackendMongo:
		if c.MongoURI == "" || c.MongoDBName == "" {
			errs = append(errs, errors.New("mongo uri and db name are required"))
		}
	}

	// redis also backs the rate limiter
	if (c.StoreBackend == notes.BackendRedis || c.RateLimitAllowedPerMin > 0) && (c.RedisHost == "" || c.RedisPort == "") {
		errs = append(errs, errors.New("redis host and port are required"))
	}

	return errors.Join(errs...)
}
