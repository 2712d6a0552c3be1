package main

import (
	"github.com/dmitrymomot/agencysite/pkg/config"
	"github.com/dmitrymomot/agencysite/pkg/email"
	"github.com/dmitrymomot/agencysite/pkg/httpserver"
	"github.com/dmitrymomot/agencysite/pkg/logger"
	"github.com/dmitrymomot/agencysite/pkg/registry"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"agencysite"`
	Log      logger.Config
	HTTP     httpserver.Config
	Email    email.Config
	Registry registry.Config
}

func loadConfig(flags *rootFlags) (appConfig, error) {
	return config.Load[appConfig](flags.envFiles...)
}
