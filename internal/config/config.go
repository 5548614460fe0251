package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all client configuration values.
type Config struct {
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	APIBaseURL      string        `mapstructure:"API_BASE_URL"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	CredentialsFile string        `mapstructure:"CREDENTIALS_FILE"`

	// Sandbox server settings, only read by cmd/sandbox.
	SandboxAddr string `mapstructure:"SANDBOX_ADDR"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
}

// Load reads configuration from config.yaml (current directory or
// ./config), a .env file if present, and the environment. Environment
// variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("REQUEST_TIMEOUT", 15*time.Second)
	viper.SetDefault("CREDENTIALS_FILE", defaultCredentialsFile())
	viper.SetDefault("SANDBOX_ADDR", ":8080")
	viper.SetDefault("DATABASE_URL", "parknow.db")
	viper.SetDefault("JWT_SECRET", "sandbox-secret")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaultCredentialsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".parknow-credentials.json"
	}
	return filepath.Join(home, ".parknow", "credentials.json")
}
