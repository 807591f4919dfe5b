package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "warn"
	defaultEnv           = "local"
	defaultConfigDir     = ".alcatelz"
	defaultTheme         = ThemeAuto
	defaultTimeout       = 30 * time.Second

	configFileName = "config.yaml"
	draftsFileName = "drafts.db"
)

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Config struct {
	Env           string        `mapstructure:"app_env" yaml:"app_env"`
	ServerAddress string        `mapstructure:"server_address" yaml:"server_address"`
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level"`
	ConfigDir     string        `mapstructure:"config_dir" yaml:"-"`
	DataPath      string        `mapstructure:"data_path" yaml:"data_path"`
	EnableTLS     bool          `mapstructure:"enable_tls" yaml:"enable_tls"`
	Theme         string        `mapstructure:"theme" yaml:"theme"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает конфигурацию: .env, файл config.yaml и переменные окружения.
// cfgFile задает файл явно, иначе ищется ~/.alcatelz/config.yaml.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// .env необязателен
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("загрузка .env: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("config_dir", defaultConfigDir)
	v.SetDefault("enable_tls", false)
	v.SetDefault("theme", defaultTheme)
	v.SetDefault("timeout", defaultTimeout)

	configDir := ResolveDir(v.GetString("config_dir"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			// файла нет, работаем на значениях по умолчанию
		default:
			return nil, fmt.Errorf("чтение конфигурации: %w", err)
		}
	}

	dataPath := v.GetString("data_path")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, draftsFileName)
	}

	cfg := &Config{
		Env:           v.GetString("app_env"),
		ServerAddress: v.GetString("server_address"),
		LogLevel:      v.GetString("log_level"),
		ConfigDir:     configDir,
		DataPath:      dataPath,
		EnableTLS:     v.GetBool("enable_tls"),
		Theme:         strings.ToLower(v.GetString("theme")),
		Timeout:       v.GetDuration("timeout"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveDir делает относительный путь каталога конфигурации домашним
func ResolveDir(dir string) string {
	if dir == "" {
		dir = defaultConfigDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, dir)
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("неизвестная тема %q: ожидается auto, light или dark", c.Theme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout должен быть положительным")
	}
	return nil
}

// BaseURL возвращает адрес сервера со схемой
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return strings.TrimRight(c.ServerAddress, "/")
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + strings.TrimRight(c.ServerAddress, "/")
}

// ConfigPath путь к файлу конфигурации
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, configFileName)
}

// Write сохраняет конфигурацию в config.yaml. Существующий файл перезаписывается только с force.
func (c *Config) Write(force bool) (string, error) {
	path := c.ConfigPath()
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, os.ErrExist
		}
	}
	if err := os.MkdirAll(c.ConfigDir, 0o700); err != nil {
		return path, fmt.Errorf("создание каталога конфигурации: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return path, fmt.Errorf("сериализация конфигурации: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return path, fmt.Errorf("запись конфигурации: %w", err)
	}
	return path, nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
