package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverCloudKit = "cloudkit"
)

type Config struct {
	Env          string
	StoreDriver  string
	CodeLanguage string
	DB           DB
	CloudKit     CloudKit
	Server       Server
	Logger       Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type CloudKit struct {
	Container   string `env:"CLOUDKIT_CONTAINER"`
	Environment string `env:"CLOUDKIT_ENVIRONMENT"`
	APIToken    string `env:"CLOUDKIT_API_TOKEN"`
	BaseURL     string `env:"CLOUDKIT_BASE_URL"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads the configuration from an optional .env file and the
// environment. It panics on an invalid configuration.
func MustLoad() *Config {
	cfg, err := Load(viper.New())
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// Load reads the configuration through v.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", "localhost:8080")
	v.SetDefault("store_driver", DriverPostgres)
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("log_level", "info")
	v.SetDefault("cloudkit_container", "iCloud.Alcatelz")
	v.SetDefault("cloudkit_environment", "development")
	v.SetDefault("cloudkit_base_url", "https://api.apple-cloudkit.com")
	v.SetDefault("code_language", "swift")

	cfg := &Config{
		Env:          v.GetString("app_env"),
		StoreDriver:  strings.ToLower(v.GetString("store_driver")),
		CodeLanguage: v.GetString("code_language"),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		CloudKit: CloudKit{
			Container:   v.GetString("cloudkit_container"),
			Environment: v.GetString("cloudkit_environment"),
			APIToken:    v.GetString("cloudkit_api_token"),
			BaseURL:     v.GetString("cloudkit_base_url"),
		},
		Server: Server{RunAddress: v.GetString("run_address")},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI is required for the %s store", DriverPostgres)
		}
	case DriverCloudKit:
		if c.CloudKit.APIToken == "" {
			return fmt.Errorf("CLOUDKIT_API_TOKEN is required for the %s store", DriverCloudKit)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
