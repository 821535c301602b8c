package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	ServerPort      string        `mapstructure:"server_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel        string        `mapstructure:"log_level"`

	GitHubToken   string `mapstructure:"github_token"`
	GitHubBaseURL string `mapstructure:"github_base_url"`

	// AuthTokens is a comma separated list of name:token pairs.
	AuthTokens string `mapstructure:"auth_tokens"`

	AnalyticsTimezone string `mapstructure:"analytics_timezone"`
	ImportConcurrency int    `mapstructure:"import_concurrency"`
}

var keys = map[string]any{
	"db_host":            "localhost",
	"db_port":            "5432",
	"db_user":            "postgres",
	"db_password":        "password",
	"db_name":            "github_scout",
	"db_sslmode":         "disable",
	"server_port":        "8080",
	"shutdown_timeout":   10 * time.Second,
	"log_level":          "info",
	"github_token":       "",
	"github_base_url":    "",
	"auth_tokens":        "",
	"analytics_timezone": "UTC",
	"import_concurrency": 4,
}

// LoadConfig reads .env (if present) and the process environment.
// A missing .env is reported through the returned error alongside a usable config.
func LoadConfig() (Config, error) {
	envErr := godotenv.Load()

	v := viper.New()
	for key, def := range keys {
		v.SetDefault(key, def)
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, envErr
}

// Validate checks the fields the server cannot start without.
func (c Config) Validate() error {
	if c.DBUser == "" || c.DBName == "" || c.DBHost == "" {
		return errors.New("db_host, db_user and db_name are required")
	}
	if _, err := c.Tokens(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ImportConcurrency < 1 {
		return errors.New("import_concurrency must be positive")
	}
	return nil
}

// DSN returns a pgx connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Tokens parses AuthTokens into a token → identity map.
func (c Config) Tokens() (map[string]string, error) {
	tokens := make(map[string]string)
	if strings.TrimSpace(c.AuthTokens) == "" {
		return tokens, nil
	}
	for _, pair := range strings.Split(c.AuthTokens, ",") {
		name, token, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" || token == "" {
			return nil, fmt.Errorf("malformed auth token entry %q, want name:token", pair)
		}
		tokens[token] = name
	}
	return tokens, nil
}

// Location resolves the time zone used to bucket analytics by calendar day.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.AnalyticsTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics_timezone %q: %w", c.AnalyticsTimezone, err)
	}
	return loc, nil
}
