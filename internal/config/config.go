package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every setting the admin API reads at start-up.
type Config struct {
	Port string
	Env  string

	DatabaseURL     string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	RedisURL        string
	CacheTTL        time.Duration
	OrdersCacheTTL  time.Duration
	NotificationCap int

	DashboardTimezone string
	RequestTimeout    time.Duration
	CORSOrigins       string
	MigrationsPath    string
	MonitorSchedule   string
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file found")
	}
}

// Load reads the environment into a Config, applying defaults.
func Load() *Config {
	LoadEnv()

	return &Config{
		Port: GetEnv("PORT", "3000"),
		Env:  GetEnv("ENV", "development"),

		DatabaseURL:     databaseURL(),
		MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),

		RedisURL:        GetEnv("REDIS_URL", "redis://localhost:6379/0"),
		CacheTTL:        GetDurationEnv("CACHE_TTL", 5*time.Minute),
		OrdersCacheTTL:  GetDurationEnv("ORDERS_CACHE_TTL", time.Minute),
		NotificationCap: GetIntEnv("NOTIFICATION_HISTORY", 100),

		DashboardTimezone: GetEnv("DASHBOARD_TIMEZONE", "UTC"),
		RequestTimeout:    GetDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
		CORSOrigins:       GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		MigrationsPath:    GetEnv("MIGRATIONS_PATH", "file://migrations"),
		MonitorSchedule:   GetEnv("MONITOR_SCHEDULE", "@every 5m"),
	}
}

// Location resolves DashboardTimezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DashboardTimezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", c.DashboardTimezone).Msg("[config] unknown DASHBOARD_TIMEZONE, using UTC")
		return time.UTC
	}
	return loc
}

// IsProduction checks if the app runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// databaseURL prefers DATABASE_URL and otherwise builds a postgres:// URL from the
// DB_* variables. Both the server and the migration tool accept the URL form.
func databaseURL() string {
	if dsn := GetEnv("DATABASE_URL", ""); dsn != "" {
		return dsn
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(GetEnv("DB_USER", "postgres"), GetEnv("DB_PASSWORD", "postgres")),
		Host:     GetEnv("DB_HOST", "localhost") + ":" + GetEnv("DB_PORT", "5432"),
		Path:     "/" + GetEnv("DB_NAME", "storeadmin"),
		RawQuery: "sslmode=" + GetEnv("DB_SSLMODE", "disable"),
	}
	return u.String()
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
		log.Warn().Str("key", key).Str("value", val).Int("default", defaultVal).Msg("[config] invalid int, using default")
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", val).Dur("default", defaultVal).Msg("[config] invalid duration, using default")
	}
	return defaultVal
}
