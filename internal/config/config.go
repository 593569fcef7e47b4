package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	ServerAddr     string
	FrontendOrigin string
	SiteBaseURL    string

	MongoURI string
	MongoDB  string

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheTTLSeconds int

	RateLimitQuotes    int
	RateLimitOrders    int
	RateLimitWindowSec int

	MailerSendAPIKey     string
	SendGridAPIKey       string
	MailSenderEmail      string
	MailSenderName       string
	MailOwnerEmail       string
	MailOwnerName        string
	OrderEmailBestEffort bool

	ValveGuideURL  string
	ValveGuidePath string

	GAMeasurementID string

	CartSessionTTLMin int

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "Europe/Madrid"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "fontaneria"
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		SiteBaseURL:    getEnv("SITE_BASE_URL", "https://www.fontaneriaipiscinas.com"),

		MongoURI: mongoURI,
		MongoDB:  mongoDB,

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 300),

		RateLimitQuotes:    getEnvInt("RATE_LIMIT_QUOTES", 6),
		RateLimitOrders:    getEnvInt("RATE_LIMIT_ORDERS", 3),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		MailerSendAPIKey:     getEnv("MAILERSEND_API_KEY", ""),
		SendGridAPIKey:       getEnv("SENDGRID_API_KEY", ""),
		MailSenderEmail:      getEnv("MAIL_SENDER_EMAIL", "info@fontaneriaipiscinas.com"),
		MailSenderName:       getEnv("MAIL_SENDER_NAME", "Fontaneria Low Cost"),
		MailOwnerEmail:       getEnv("MAIL_OWNER_EMAIL", ""),
		MailOwnerName:        getEnv("MAIL_OWNER_NAME", "Propietario"),
		OrderEmailBestEffort: getEnv("ORDER_EMAIL_BEST_EFFORT", "false") == "true",

		ValveGuideURL:  getEnv("VALVE_GUIDE_URL", ""),
		ValveGuidePath: getEnv("VALVE_GUIDE_PATH", "docs/guia-valvulas-piscina.pdf"),

		GAMeasurementID: getEnv("GA_MEASUREMENT_ID", ""),

		CartSessionTTLMin: getEnvInt("CART_SESSION_TTL_MIN", 30),

		Timezone: loc,
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; only the first one is the db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}
