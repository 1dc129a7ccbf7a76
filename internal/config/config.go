package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	DbHost        string        `mapstructure:"POSTGRES_HOST"`
	DbPort        string        `mapstructure:"POSTGRES_PORT"`
	DbUser        string        `mapstructure:"POSTGRES_USER"`
	DbPassword    string        `mapstructure:"POSTGRES_PASSWORD"`
	DbName        string        `mapstructure:"POSTGRES_DB"`
	TokenKey      string        `mapstructure:"TOKEN_KEY"`
	TokenDuration time.Duration `mapstructure:"TOKEN_DURATION"`
}

func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DbUser, c.DbPassword, c.DbHost, c.DbPort, c.DbName)
}

var (
	current Config
	loadErr error
	mu      sync.RWMutex
	once    sync.Once
)

// Load reads the optional .env file and the environment, then watches
// the file for changes. Later calls return the cached value, or the
// original failure if the first read went wrong.
func Load() (Config, error) {
	once.Do(func() {
		viper.SetConfigFile(".env")
		viper.SetConfigType("env")
		viper.AutomaticEnv()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "postgres")
		viper.SetDefault("POSTGRES_DB", "pharmacy")
		viper.SetDefault("TOKEN_DURATION", "24h")
		viper.SetDefault("TOKEN_KEY", "")

		// The .env file is optional, env vars alone are fine.
		if err := viper.ReadInConfig(); err == nil {
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				cf, err := unmarshal()
				if err != nil {
					return
				}
				mu.Lock()
				current = cf
				mu.Unlock()
			})
		}

		cf, err := unmarshal()
		if err != nil {
			loadErr = err
			return
		}

		mu.Lock()
		current = cf
		mu.Unlock()
	})
	if loadErr != nil {
		return Config{}, loadErr
	}

	mu.RLock()
	defer mu.RUnlock()
	return current, nil
}

func unmarshal() (Config, error) {
	var cf Config

	if err := viper.Unmarshal(&cf); err != nil {
		return cf, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	if cf.TokenKey == "" {
		return cf, fmt.Errorf("TOKEN_KEY is not set")
	}

	return cf, nil
}
