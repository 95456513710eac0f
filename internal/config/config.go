package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	Server     ServerConfig
	CORS       CORSConfig
	Scheduling SchedulingConfig
	Worker     WorkerConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SchedulingConfig carries the engine constants. The defaults preserve the
// original scheduling behaviour; override via environment only when a
// hospital's theatre policy genuinely differs.
type SchedulingConfig struct {
	TimeBudgetRatio          float64
	MaxPCS                   float64
	MinRemainingMinutes      int
	MaxCasesPerSession       int
	SetupMinutes             int
	FallbackProcedureMinutes int
	MaxRecommendations       int
	MinutesPerDurationPoint  int
}

// WorkerConfig controls the background schedule refresh worker
type WorkerConfig struct {
	Enabled     bool
	Interval    time.Duration
	HorizonDays int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "theatre_scheduling"),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("JWT_ACCESS_SECRET", "your-access-secret-key"),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", "your-refresh-secret-key"),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m"), 15*time.Minute),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Scheduling: SchedulingConfig{
			TimeBudgetRatio:          parseFloat(getEnv("SCHED_TIME_BUDGET_RATIO", "0.95"), 0.95),
			MaxPCS:                   parseFloat(getEnv("SCHED_MAX_PCS", "32"), 32),
			MinRemainingMinutes:      parseInt(getEnv("SCHED_MIN_REMAINING_MINUTES", "30"), 30),
			MaxCasesPerSession:       parseInt(getEnv("SCHED_MAX_CASES_PER_SESSION", "8"), 8),
			SetupMinutes:             parseInt(getEnv("SCHED_SETUP_MINUTES", "30"), 30),
			FallbackProcedureMinutes: parseInt(getEnv("SCHED_FALLBACK_PROCEDURE_MINUTES", "90"), 90),
			MaxRecommendations:       parseInt(getEnv("SCHED_MAX_RECOMMENDATIONS", "3"), 3),
			MinutesPerDurationPoint:  parseInt(getEnv("SCHED_MINUTES_PER_DURATION_POINT", "18"), 18),
		},
		Worker: WorkerConfig{
			Enabled:     getEnv("REFRESH_WORKER_ENABLED", "false") == "true",
			Interval:    parseDuration(getEnv("REFRESH_WORKER_INTERVAL", "24h"), 24*time.Hour),
			HorizonDays: parseInt(getEnv("REFRESH_WORKER_HORIZON_DAYS", "7"), 7),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Printf("Warning: Invalid integer '%s', using default\n", s)
		return fallback
	}
	return v
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Printf("Warning: Invalid number '%s', using default\n", s)
		return fallback
	}
	return v
}

func parseOrigins(s string) []string {
	if s == "" {
		return []string{}
	}

	origins := []string{}
	current := ""
	for _, char := range s {
		if char == ',' {
			if current != "" {
				origins = append(origins, current)
				current = ""
			}
		} else {
			current += string(char)
		}
	}
	if current != "" {
		origins = append(origins, current)
	}

	return origins
}
