package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	API     APIConfig
	Logger  LoggerConfig
	Session SessionConfig
}

type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	RetryCount     int
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SessionConfig struct {
	Path string
}

func LoadEnv() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8001/api/v1"),
			TimeoutSeconds: getEnvInt("API_TIMEOUT_SECONDS", 15),
			RetryCount:     getEnvInt("API_RETRY_COUNT", 0),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Session: SessionConfig{
			Path: getEnv("SESSION_PATH", defaultSessionPath()),
		},
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ims-session.json"
	}
	return filepath.Join(dir, "ims", "session.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
