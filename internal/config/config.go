package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	URL          string
	PollCacheTTL time.Duration
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

var (
	configInstance *Config
	once           sync.Once
)

// LoadConfig reads configuration from the environment (and an optional .env
// file) with sane defaults, once per process.
func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		viper.SetDefault("POLLS_HOST", "")
		viper.SetDefault("POLLS_PORT", "8080")
		viper.SetDefault("POLLS_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("POLLS_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("POLLS_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("POLLS_JWT_SECRET", "secret")
		viper.SetDefault("POLLS_JWT_EXPIRE", "24h")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.SetDefault("POLLS_CACHE_TTL", 5*time.Minute)
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "password")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_DB", "polls")
		viper.SetDefault("POSTGRES_SSLMODE", "disable")
		viper.AutomaticEnv()

		// Missing .env is fine; environment variables and defaults apply.
		_ = viper.ReadInConfig()

		configInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("POLLS_HOST"),
				Port:         viper.GetString("POLLS_PORT"),
				ReadTimeout:  viper.GetDuration("POLLS_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("POLLS_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("POLLS_IDLE_TIMEOUT"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("POSTGRES_HOST"),
				Port:     viper.GetString("POSTGRES_PORT"),
				User:     viper.GetString("POSTGRES_USER"),
				Password: viper.GetString("POSTGRES_PASSWORD"),
				DBName:   viper.GetString("POSTGRES_DB"),
				SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			},
			Redis: RedisConfig{
				URL:          viper.GetString("REDIS_URL"),
				PollCacheTTL: viper.GetDuration("POLLS_CACHE_TTL"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("POLLS_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("POLLS_JWT_EXPIRE"),
			},
		}
	})

	return configInstance, nil
}
