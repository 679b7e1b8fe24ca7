package main

import (
	"github.com/dmitrymomot/spellbook/core/logger"
	"github.com/dmitrymomot/spellbook/core/server"
)

// Config is loaded from the environment (and .env) at startup.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"spellbook"`

	// Name greeted by "/" unless InjectName overrides it per request
	GreetingName string `env:"GREETING_NAME" envDefault:"World"`
	InjectName   string `env:"INJECT_NAME"`

	// Per client IP; zero disables rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	Log    logger.Config
	Server server.Config
}
