// Package config handles loading and validating the appraisal server
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Appraisal AppraisalConfig `yaml:"appraisal"`
	Retention RetentionConfig `yaml:"retention"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string          `yaml:"host"`
	Port         int             `yaml:"port"`
	ReadTimeout  time.Duration   `yaml:"read_timeout"`
	WriteTimeout time.Duration   `yaml:"write_timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RateLimitConfig defines the API token bucket.
type RateLimitConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// AppraisalConfig tunes the appraisal pipeline.
type AppraisalConfig struct {
	// Concurrency bounds parallel appraisals within one batch request.
	Concurrency int `yaml:"concurrency"`
	// MaxBatchSize caps the number of requests in one batch.
	MaxBatchSize int `yaml:"max_batch_size"`
	// CanonicalizeUnknown maps free-form issue descriptions onto vocabulary
	// tags before estimating.
	CanonicalizeUnknown    bool    `yaml:"canonicalize_unknown"`
	OutlierStdDevThreshold float64 `yaml:"outlier_std_dev_threshold"`
}

// RetentionConfig controls the scheduled pruning of stored appraisals.
type RetentionConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	MaxAge   time.Duration `yaml:"max_age"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyAppraisalDefaults(&cfg.Appraisal)
	applyRetentionDefaults(&cfg.Retention)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 20
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 40
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAppraisalDefaults(a *AppraisalConfig) {
	if a.Concurrency == 0 {
		a.Concurrency = 4
	}
	if a.MaxBatchSize == 0 {
		a.MaxBatchSize = 100
	}
	if a.OutlierStdDevThreshold == 0 {
		a.OutlierStdDevThreshold = 2.0
	}
}

func applyRetentionDefaults(r *RetentionConfig) {
	if r.Interval == 0 {
		r.Interval = 24 * time.Hour
	}
	if r.MaxAge == 0 {
		r.MaxAge = 90 * 24 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}
	if cfg.Server.RateLimit.Enabled {
		if cfg.Server.RateLimit.PerSecond < 0 {
			errs = append(errs, errors.New("server.rate_limit.per_second must be positive"))
		}
		if cfg.Server.RateLimit.Burst < 0 {
			errs = append(errs, errors.New("server.rate_limit.burst must be positive"))
		}
	}

	if cfg.Appraisal.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("appraisal.concurrency must be at least 1 (got %d)", cfg.Appraisal.Concurrency))
	}
	if cfg.Appraisal.MaxBatchSize < 1 {
		errs = append(errs, fmt.Errorf("appraisal.max_batch_size must be at least 1 (got %d)", cfg.Appraisal.MaxBatchSize))
	}
	if t := cfg.Appraisal.OutlierStdDevThreshold; t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		errs = append(errs, fmt.Errorf("appraisal.outlier_std_dev_threshold must be a positive number (got %v)", t))
	}

	if cfg.Retention.Enabled {
		if cfg.Retention.Interval < time.Minute {
			errs = append(errs, fmt.Errorf("retention.interval must be at least 1m (got %s)", cfg.Retention.Interval))
		}
		if cfg.Retention.MaxAge < 0 {
			errs = append(errs, errors.New("retention.max_age must be positive"))
		}
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
