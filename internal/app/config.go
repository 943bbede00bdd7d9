package app

import (
	"github.com/yungbote/teampulse-backend/internal/platform/envutil"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

type Config struct {
	APIKey      string
	Port        string
	Environment string
	Version     string
}

func LoadConfig(log *logger.Logger) Config {
	apiKey := envutil.String("API_KEY", "", log)
	port := envutil.String("PORT", "8080", log)
	environment := envutil.String("APP_ENV", "development", log)
	version := envutil.String("APP_VERSION", "dev", log)
	return Config{
		APIKey:      apiKey,
		Port:        port,
		Environment: environment,
		Version:     version,
	}
}
