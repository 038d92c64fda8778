package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hackplatform/client-go/pkg/env"
	"github.com/hackplatform/client-go/pkg/log"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

func InitLogger() log.Logger {
	logLevelStr, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return log.New(log.LevelInfo)
	}

	logLevel, ok := logLevelMap[logLevelStr]
	if !ok {
		logLevel = log.LevelInfo
	}

	return log.New(logLevel)
}

// LoadDotEnv populates the process environment from a .env file in the
// working directory. A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env file: %w", err)
	}

	return nil
}

// MustInitCookieJarPath resolves the file the session cookies persist to,
// COOKIE_JAR_PATH when set, the user config directory otherwise.
func MustInitCookieJarPath(appName string) string {
	if path, err := env.Parse[string]("COOKIE_JAR_PATH"); err == nil {
		return path
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		panic(fmt.Errorf("resolve user config directory: %w", err))
	}

	return filepath.Join(configDir, appName, "cookies.json")
}
