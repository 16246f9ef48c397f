package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/gbellini/fantamarket/internal/domain"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Market   MarketConfig
}

type ServerConfig struct {
	Addr            string
	RateLimitPerSec int
	RateLimitBurst  int
}

type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type MarketConfig struct {
	StartingBudget  float64
	MaxPlayerPrice  float64
	SuggestionLimit int
	RosterLimits    map[domain.Role]int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			RateLimitPerSec: getEnvAsInt("RATE_LIMIT_PER_SEC", 20),
			RateLimitBurst:  getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "fantamarket.db"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", "dev-jwt-secret-change-in-production"),
			AccessTokenTTL:  time.Duration(getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
			RefreshTokenTTL: time.Duration(getEnvAsInt("JWT_REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		},
		Market: MarketConfig{
			StartingBudget:  getEnvAsFloat("MARKET_STARTING_BUDGET", 300.0),
			MaxPlayerPrice:  getEnvAsFloat("MARKET_MAX_PLAYER_PRICE", 1000.0),
			SuggestionLimit: getEnvAsInt("MARKET_SUGGESTION_LIMIT", 8),
			RosterLimits: map[domain.Role]int{
				domain.RoleGoalkeeper: getEnvAsInt("ROSTER_LIMIT_P", 3),
				domain.RoleDefender:   getEnvAsInt("ROSTER_LIMIT_D", 8),
				domain.RoleMidfielder: getEnvAsInt("ROSTER_LIMIT_C", 8),
				domain.RoleForward:    getEnvAsInt("ROSTER_LIMIT_A", 6),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
