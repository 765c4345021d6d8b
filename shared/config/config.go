// Package config loads per-service configuration from the environment.
//
// A ./.env file is read first when present. Values already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvPath = "./.env"

// Common holds the settings every service binary shares.
type Common struct {
	HTTPAddr        string        `env:"HTTP_ADDR"        envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogPretty       bool          `env:"LOG_PRETTY"       envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

const (
	StorageBackendS3     = "s3"
	StorageBackendMemory = "memory"
	StorageBackendFile   = "file"
)

type StorageConfig struct {
	Common
	Backend     string `env:"STORAGE_BACKEND" envDefault:"s3"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3UseSSL    bool   `env:"S3_USE_SSL" envDefault:"false"`
	StorageDir  string `env:"STORAGE_DIR" envDefault:"./data"`
}

func (c *StorageConfig) validate() error {
	switch c.Backend {
	case StorageBackendMemory, StorageBackendFile:
		return nil
	case StorageBackendS3:
		return requireAll(
			setting{"S3_ENDPOINT", c.S3Endpoint},
			setting{"S3_ACCESS_KEY", c.S3AccessKey},
			setting{"S3_SECRET_KEY", c.S3SecretKey},
			setting{"S3_BUCKET", c.S3Bucket},
		)
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Backend)
	}
}

const (
	ImageStorageHTTP   = "http"
	ImageStorageMemory = "memory"
)

type ImageConfig struct {
	Common
	Storage                string        `env:"IMAGE_STORAGE"            envDefault:"http"`
	StorageServiceEndpoint string        `env:"STORAGE_SERVICE_ENDPOINT"`
	ClientTimeout          time.Duration `env:"HTTP_CLIENT_TIMEOUT"      envDefault:"10s"`
}

func (c *ImageConfig) validate() error {
	switch c.Storage {
	case ImageStorageMemory:
		return nil
	case ImageStorageHTTP:
		return requireAll(setting{"STORAGE_SERVICE_ENDPOINT", c.StorageServiceEndpoint})
	default:
		return fmt.Errorf("unknown IMAGE_STORAGE %q", c.Storage)
	}
}

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Common
	Driver     string `env:"DB_DRIVER"      envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_DB_PATH" envDefault:"./memes.db"`
	DBURL      string `env:"DB_URL"`
}

func (c *DatabaseConfig) validate() error {
	switch c.Driver {
	case DBDriverSQLite:
		return nil
	case DBDriverPostgres:
		return requireAll(setting{"DB_URL", c.DBURL})
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Driver)
	}
}

type MemeConfig struct {
	Common
	ImageServiceEndpoint string        `env:"IMAGE_SERVICE_ENDPOINT,required"`
	DBServiceEndpoint    string        `env:"DB_SERVICE_ENDPOINT,required"`
	ClientTimeout        time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
}

func (c *MemeConfig) validate() error { return nil }

type validator interface {
	validate() error
}

func LoadStorage() (*StorageConfig, error) {
	var cfg StorageConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadImage() (*ImageConfig, error) {
	var cfg ImageConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadMeme() (*MemeConfig, error) {
	var cfg MemeConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// load reads .env (if any), parses the environment into cfg and validates it.
func load(cfg validator) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadDotEnv() error {
	if _, err := os.Stat(dotEnvPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(dotEnvPath); err != nil {
		return fmt.Errorf("load %s: %w", dotEnvPath, err)
	}
	return nil
}

type setting struct {
	name  string
	value string
}

func requireAll(settings ...setting) error {
	var missing []error
	for _, s := range settings {
		if s.value == "" {
			missing = append(missing, fmt.Errorf("%s must be set", s.name))
		}
	}
	return errors.Join(missing...)
}
