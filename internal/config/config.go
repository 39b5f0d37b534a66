package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultConfigPath = "config/local.yaml"

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Storage struct {
	Driver string `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"STORAGE_PATH" env:"STORAGE_PATH" env-default:"data/sneaker_inventory.db"`
}

type Database struct {
	Host     string `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port     string `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User     string `yaml:"PG_USER" env:"PG_USER"`
	Password string `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name     string `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode  string `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// Auth controls the demo login behaviour. With VerifyPasswords off any
// password is accepted for a registered e-mail.
type Auth struct {
	VerifyPasswords bool `yaml:"VERIFY_PASSWORDS" env:"AUTH_VERIFY_PASSWORDS" env-default:"false"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:""`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Sneaker Inventory"`
	// API host override, empty for api.sendgrid.com
	Host      string `yaml:"HOST" env:"SENDGRID_HOST" env-default:""`
}

// RateLimit bounds login attempts per e-mail within a sliding window.
// MaxAttempts of 0 turns the limiter off.
type RateLimit struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"LOGIN_MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"LOGIN_WINDOW_SIZE" env-default:"15s"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"sneaker-inventory"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Storage      Storage      `yaml:"storage"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Auth         Auth         `yaml:"auth"`
	RateLimit    RateLimit    `yaml:"rate_limit"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         Otel         `yaml:"otel"`
}

// ResolvePath picks the config file: explicit flag value, then CONFIG_PATH, then the default.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return envPath
	}

	return DefaultConfigPath
}

func Load(flagPath string) (*Config, error) {
	return LoadConfigFromPath(ResolvePath(flagPath))
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields the selected storage driver depends on.
func (c *Config) Validate() error {

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.Path == "" {
			return errors.New("storage path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.User == "" || c.Database.Password == "" || c.Database.Name == "" {
			return errors.New("PG_USER, PG_PASSWORD and PG_DBNAME are required for the postgres driver")
		}
	case DriverRedis:
		if c.RedisConnect.Host == "" {
			return errors.New("REDIS_HOST is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.RateLimit.MaxAttempts < 0 || (c.RateLimit.MaxAttempts > 0 && c.RateLimit.WindowSize <= 0) {
		return errors.New("rate limit needs a non-negative MAX_ATTEMPTS and a positive WINDOW_SIZE")
	}

	if c.Otel.SamplerRatio < 0 || c.Otel.SamplerRatio > 1 {
		return fmt.Errorf("otel sampler ratio must be within [0, 1], got %v", c.Otel.SamplerRatio)
	}

	return nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
