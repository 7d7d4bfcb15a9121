package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                      string
	Origin                    string
	Environment               string
	JWTSecret                 string
	JWTRefreshSecret          string
	JWTExpirationMinutes      int
	JWTRefreshExpirationHours int
	Database                  DatabaseConfig
	Log                       LogConfig
	Reminders                 ReminderConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LogConfig controls log level, console output and file rotation.
type LogConfig struct {
	Level      string
	Console    bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ReminderConfig controls the dose-reminder sweep.
type ReminderConfig struct {
	Enabled  bool
	CronSpec string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "mediping"),
	}
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes, err := getEnvInt("JWT_EXPIRATION_MINUTES", 15)
	if err != nil {
		return nil, err
	}

	jwtRefreshExpHours, err := getEnvInt("JWT_REFRESH_EXPIRATION_HOURS", 168) // 7 days
	if err != nil {
		return nil, err
	}

	logMaxSize, err := getEnvInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	logMaxBackups, err := getEnvInt("LOG_MAX_BACKUPS", 5)
	if err != nil {
		return nil, err
	}
	logMaxAge, err := getEnvInt("LOG_MAX_AGE_DAYS", 30)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                      getEnv("PORT", "3001"),
		Origin:                    getEnv("ORIGIN", "http://localhost:3000"),
		Environment:               getEnv("APP_ENV", "development"),
		JWTSecret:                 getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTRefreshSecret:          getEnv("JWT_REFRESH_SECRET", "default_refresh_secret"),
		JWTExpirationMinutes:      jwtExpMinutes,
		JWTRefreshExpirationHours: jwtRefreshExpHours,
		Database:                  dbConfig,
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Console:    getEnv("LOG_CONSOLE", "true") == "true",
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAgeDays: logMaxAge,
		},
		Reminders: ReminderConfig{
			Enabled:  getEnv("REMINDERS_ENABLED", "true") == "true",
			CronSpec: getEnv("REMINDERS_CRON", "0,30 * * * *"),
		},
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
