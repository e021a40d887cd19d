package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         App
	StatsAPI    StatsAPI
	HTTP        HTTP
	TelegramBot TelegramBot
	Cache       Cache
	Teams       Teams
}

type App struct {
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Timezone string `envconfig:"TIMEZONE" default:"America/New_York"`
}

type StatsAPI struct {
	BaseURL string        `envconfig:"STATS_API_BASE_URL" default:"http://localhost:5000/api"`
	Timeout time.Duration `envconfig:"STATS_API_TIMEOUT" default:"10s"`
}

type HTTP struct {
	Addr        string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// TelegramBot is optional; an empty token disables the chat front end.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

// Cache is optional; an empty URL disables the response cache.
type Cache struct {
	RedisURL string        `envconfig:"REDIS_URL"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"2m"`
}

type Teams struct {
	RefreshInterval time.Duration `envconfig:"TEAMS_REFRESH_INTERVAL" default:"6h"`
	MaxAge          time.Duration `envconfig:"TEAMS_MAX_AGE" default:"24h"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if _, err := c.Location(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Location resolves the configured timezone used for "today" and date ranges.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
