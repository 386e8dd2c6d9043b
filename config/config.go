/*
Package config loads server configuration from the environment.

PURPOSE:
  One place for every knob. Values come from the process environment,
  with a .env file loaded first when present (godotenv), so local
  development and deployment read configuration the same way.

VARIABLES:
  TELEGRAM_BOT_TOKEN  Bot token. Empty disables the chat bridge; the
                      HTTP API still runs.
  WEBAPP_URL          Base URL the mini-app is served from.
  DATABASE_URL        SQLite path (default schedule.db, ":memory:" works).
  PORT                HTTP port (default 8080).
*/
package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken string
	WebAppURL     string
	DatabaseURL   string
	Port          int
}

var instance *Config
var once sync.Once

// Get loads the configuration once and returns it on every call.
func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err)
		}

		instance = &Config{
			TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			WebAppURL:     getEnv("WEBAPP_URL", "http://localhost:8080"),
			DatabaseURL:   getEnv("DATABASE_URL", "schedule.db"),
			Port:          getEnvAsInt("PORT", 8080),
		}

		if instance.TelegramToken == "" {
			logrus.Warn("TELEGRAM_BOT_TOKEN not set, chat bridge disabled")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	if val, err := strconv.Atoi(getEnv(name, "")); err == nil {
		return val
	}
	return defaultVal
}
