package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrMissingStoreConfig = errors.New("store configuration is missing: both STORE_URL and STORE_SERVICE_KEY are required")

const (
	MinQueryTimeout     = time.Second
	MaxQueryTimeout     = 15 * time.Second
	DefaultQueryTimeout = 8 * time.Second
)

type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Audit   AuditConfig   `yaml:"audit"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Logging LoggingConfig `yaml:"logging"`
}

type StoreConfig struct {
	URL          string        `yaml:"url"`
	ServiceKey   string        `yaml:"service_key"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
	MaxConns     int32         `yaml:"max_conns"`
}

// Validate reports ErrMissingStoreConfig when either credential is absent.
func (c StoreConfig) Validate() error {
	if strings.TrimSpace(c.URL) == "" || strings.TrimSpace(c.ServiceKey) == "" {
		return ErrMissingStoreConfig
	}
	return nil
}

// Timeout returns the per-call bound clamped to [MinQueryTimeout, MaxQueryTimeout].
func (c StoreConfig) Timeout() time.Duration {
	switch {
	case c.QueryTimeout <= 0:
		return DefaultQueryTimeout
	case c.QueryTimeout < MinQueryTimeout:
		return MinQueryTimeout
	case c.QueryTimeout > MaxQueryTimeout:
		return MaxQueryTimeout
	}
	return c.QueryTimeout
}

type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	Transport   string        `yaml:"transport"`
	MaxDuration time.Duration `yaml:"max_duration"`
	WarnAfter   time.Duration `yaml:"warn_after"`
}

// WarnDelay is the point at which the watchdog transport logs a warning.
func (c ServerConfig) WarnDelay() time.Duration {
	if c.WarnAfter > 0 && c.WarnAfter < c.MaxDuration {
		return c.WarnAfter
	}
	return c.MaxDuration * 8 / 10
}

type AuthConfig struct {
	Required      bool   `yaml:"required"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"-"`
}

type AuditConfig struct {
	Workers      int           `yaml:"workers"`
	BatchSize    int           `yaml:"batch_size"`
	FlushTimeout time.Duration `yaml:"flush_timeout"`
}

type KafkaConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic"`
	GroupID      string        `yaml:"group_id"`
	PollInterval time.Duration `yaml:"poll_interval"`
	BatchSize    int           `yaml:"batch_size"`
	MaxAttempts  int           `yaml:"max_attempts"`
	ClaimLease   time.Duration `yaml:"claim_lease"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			QueryTimeout: DefaultQueryTimeout,
			MaxConns:     4,
		},
		Server: ServerConfig{
			Addr:        ":9000",
			Transport:   "standard",
			MaxDuration: 25 * time.Second,
		},
		Auth: AuthConfig{
			Required: true,
		},
		Audit: AuditConfig{
			Workers:      2,
			BatchSize:    5,
			FlushTimeout: 500 * time.Millisecond,
		},
		Kafka: KafkaConfig{
			Brokers:      []string{"localhost:9092"},
			Topic:        "audit_logs",
			GroupID:      "audit-log-consumer-group",
			PollInterval: 2 * time.Second,
			BatchSize:    20,
			MaxAttempts:  5,
			ClaimLease:   time.Minute,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// a .env file if one is found and finally the process environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadDotEnv()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			return
		}
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) applyEnvOverrides() error {
	if v := firstEnv("STORE_URL", "SUPABASE_URL", "DATABASE_URL"); v != "" {
		c.Store.URL = v
	}
	if v := firstEnv("STORE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY"); v != "" {
		c.Store.ServiceKey = v
	}
	if v := os.Getenv("STORE_QUERY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid STORE_QUERY_TIMEOUT %q: %w", v, err)
		}
		c.Store.QueryTimeout = d
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	} else if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("TRANSPORT_VARIANT"); v != "" {
		c.Server.Transport = v
	}
	if v := os.Getenv("MAX_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_DURATION %q: %w", v, err)
		}
		c.Server.MaxDuration = d
	}

	if v := os.Getenv("AUTH_REQUIRED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUTH_REQUIRED %q: %w", v, err)
		}
		c.Auth.Required = b
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Auth.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Auth.AdminPassword = v
	}

	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid KAFKA_ENABLED %q: %w", v, err)
		}
		c.Kafka.Enabled = b
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}
