package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Database  DatabaseConfig
	Gemini    GeminiConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Tutor     TutorConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AuthConfig struct {
	JWTSecret string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// TutorConfig tunes the conversation pipeline.
type TutorConfig struct {
	HistoryWindow      int // stored messages loaded per turn
	HistoryFormatLimit int // messages rendered into model context
	CacheSize          int // in-process pronunciation cache entries
	CacheTTLMinutes    int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Environment: EnvironmentConfig{
			Name: viper.GetString("environment.name"),
		},
		HTTPServer: HTTPServerConfig{
			Port: viper.GetInt("http_server.port"),
			Mode: viper.GetString("http_server.mode"),
		},
		Logger: LoggerConfig{
			Level:        viper.GetString("logger.level"),
			Mode:         viper.GetString("logger.mode"),
			Encoding:     viper.GetString("logger.encoding"),
			ColorEnabled: viper.GetBool("logger.color_enabled"),
		},
		Database: DatabaseConfig{
			URL:          expandEnvVar(viper.GetString("database.url")),
			MaxOpenConns: viper.GetInt("database.max_open_conns"),
			MaxIdleConns: viper.GetInt("database.max_idle_conns"),
		},
		Gemini: GeminiConfig{
			APIKey: expandEnvVar(viper.GetString("gemini.api_key")),
			Model:  viper.GetString("gemini.model"),
		},
		Auth: AuthConfig{
			JWTSecret: expandEnvVar(viper.GetString("auth.jwt_secret")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMin: viper.GetInt("rate_limit.requests_per_min"),
		},
		Tutor: TutorConfig{
			HistoryWindow:      viper.GetInt("tutor.history_window"),
			HistoryFormatLimit: viper.GetInt("tutor.history_format_limit"),
			CacheSize:          viper.GetInt("tutor.cache_size"),
			CacheTTLMinutes:    viper.GetInt("tutor.cache_ttl_minutes"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment.Name == "" {
		cfg.Environment.Name = "development"
	}
	if cfg.HTTPServer.Port == 0 {
		cfg.HTTPServer.Port = 8080
	}
	if cfg.HTTPServer.Mode == "" {
		cfg.HTTPServer.Mode = "debug"
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Encoding == "" {
		cfg.Logger.Encoding = "console"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.RateLimit.RequestsPerMin == 0 {
		cfg.RateLimit.RequestsPerMin = 60
	}
	if cfg.Tutor.HistoryWindow == 0 {
		cfg.Tutor.HistoryWindow = 20
	}
	if cfg.Tutor.HistoryFormatLimit == 0 {
		cfg.Tutor.HistoryFormatLimit = 10
	}
	if cfg.Tutor.CacheSize == 0 {
		cfg.Tutor.CacheSize = 1000
	}
	if cfg.Tutor.CacheTTLMinutes == 0 {
		cfg.Tutor.CacheTTLMinutes = 30
	}
}

func validate(cfg *Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Tutor.HistoryFormatLimit > cfg.Tutor.HistoryWindow {
		return fmt.Errorf("tutor.history_format_limit must not exceed tutor.history_window")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
