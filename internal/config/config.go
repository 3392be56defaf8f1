package config

import (
	"os"
	"strconv"

	"focusflow/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string
	Version     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Referral links are built as ReferralLinkBase + "?ref=" + code.
	ReferralLinkBase string

	// Checkout URLs of the dev payment provider are prefixed with this.
	PaymentBaseURL string

	// Per-user limit on completion endpoints.
	ActivityRateLimit  int
	ActivityRateWindow int
}

// Load reads the config from env (with .env support in dev).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	referralBase := os.Getenv("REFERRAL_LINK_BASE")
	if referralBase == "" {
		referralBase = "https://focusflow.app"
	}

	paymentBase := os.Getenv("PAYMENT_BASE_URL")
	if paymentBase == "" {
		paymentBase = "http://localhost:" + port + "/pay"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	activityRateLimit := 60
	if v := os.Getenv("ACTIVITY_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			activityRateLimit = n
		}
	}

	activityRateWindow := 60
	if v := os.Getenv("ACTIVITY_RATE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			activityRateWindow = n
		}
	}

	return &Config{
		AppPort:            port,
		DatabaseURL:        dbURL,
		JWTSecret:          jwtSecret,
		Version:            version,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            redisDB,
		ReferralLinkBase:   referralBase,
		PaymentBaseURL:     paymentBase,
		ActivityRateLimit:  activityRateLimit,
		ActivityRateWindow: activityRateWindow,
	}
}
