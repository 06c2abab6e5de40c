package config

import (
	"log/slog"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load applies the first env file found among envFilePath, then ".env",
// each searched upward from the working directory. Variables already set
// in the process win over file values. A missing file is not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	candidates := append(envFilePath[:len(envFilePath):len(envFilePath)], ".env")
	if path := loadEnvFile(logger, candidates); path != "" {
		logger.Info("Loaded environment file", "path", path)
	} else {
		logger.Warn("No environment file found, using process environment")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"store_driver", cfg.Store.Driver,
		"lock_driver", cfg.Lock.Driver,
		"pin_pattern", cfg.Pin.Pattern,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"db", redactURL(cfg.DB.Url),
		"redis", redactURL(cfg.Redis.URL),
	)
	return &cfg, nil
}

func loadEnvFile(logger *slog.Logger, candidates []string) string {
	for _, name := range candidates {
		path, err := FindEnvTest(name)
		if err != nil {
			logger.Debug("Environment file not found", "path", name)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Error("Failed to load environment file", "path", path, "error", err)
			continue
		}
		return path
	}
	return ""
}

// redactURL hides the password of a connection URL. Values that do not
// parse as a URL with a host are masked whole.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return maskValue(raw)
	}
	return u.Redacted()
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
