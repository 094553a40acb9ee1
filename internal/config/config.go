package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

var ErrMissingSessionSecret = errors.New("session secret is not configured")

type Config struct {
	App     AppConfig     `toml:"app"`
	Session SessionConfig `toml:"session"`
	SQLite  SQLiteConfig  `toml:"sqlite"`
	Redis   RedisConfig   `toml:"redis"`
}

type AppConfig struct {
	Name      string `toml:"name"`
	Env       string `toml:"env"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	GinMode   string `toml:"gin_mode"`
	Templates string `toml:"templates"`
}

type SessionConfig struct {
	// Secret has no default on purpose: startup fails without one.
	Secret        string `toml:"secret"`
	CookieName    string `toml:"cookie_name"`
	MaxAgeSeconds int    `toml:"max_age_seconds"`
	Store         string `toml:"store"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return ErrMissingSessionSecret
	}
	if c.Session.Store != SessionStoreCookie && c.Session.Store != SessionStoreRedis {
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:      "carpoolhub",
			Env:       "dev",
			Host:      "0.0.0.0",
			Port:      8080,
			GinMode:   "debug",
			Templates: "web/templates/*.html",
		},
		Session: SessionConfig{
			CookieName:    "carpoolhub",
			MaxAgeSeconds: 86400,
			Store:         SessionStoreCookie,
		},
		SQLite: SQLiteConfig{
			Path: "data/carpool.db",
		},
		Redis: RedisConfig{
			Addr:     "127.0.0.1:6379",
			Password: "",
			DB:       0,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.Templates = getEnv("APP_TEMPLATES", cfg.App.Templates)

	cfg.Session.Secret = getEnv("SESSION_SECRET", cfg.Session.Secret)
	cfg.Session.CookieName = getEnv("SESSION_COOKIE_NAME", cfg.Session.CookieName)
	cfg.Session.MaxAgeSeconds = getEnvAsInt("SESSION_MAX_AGE_SECONDS", cfg.Session.MaxAgeSeconds)
	cfg.Session.Store = getEnv("SESSION_STORE", cfg.Session.Store)

	cfg.SQLite.Path = getEnv("SQLITE_PATH", cfg.SQLite.Path)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
