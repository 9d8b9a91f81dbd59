package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis    RedisConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Log      LogConfig
	Ingest   IngestConfig
	Resolver ResolverConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig configures the single env-provisioned admin account and token issuance.
type AuthConfig struct {
	Enabled           bool
	AdminEmail        string
	AdminPasswordHash string
	TokenSecret       string
	TokenExpiry       time.Duration
	Issuer            string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// IngestConfig carries upload limits and schema-variant defaults for the
// CSV normalization pipeline.
type IngestConfig struct {
	MaxDocumentBytes         int64
	DefaultCredits           int
	DefaultLabCredits        int
	DefaultRoomCapacity      int
	PlanWeeklyHours          int
	TimetableWeeklyHours     int
	PlanEstimatedStudents    int
	DefaultEstimatedStudents int
	SemesterYear             int
}

// ResolverConfig governs class metadata resolution caching.
type ResolverConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Auth = AuthConfig{
		Enabled:           v.GetBool("ENABLE_AUTH"),
		AdminEmail:        v.GetString("ADMIN_EMAIL"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		TokenSecret:       v.GetString("JWT_SECRET"),
		TokenExpiry:       parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:            v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	maxDocumentBytes := v.GetInt64("INGEST_MAX_DOCUMENT_BYTES")
	if maxDocumentBytes <= 0 {
		maxDocumentBytes = 8 * 1024 * 1024
	}
	cfg.Ingest = IngestConfig{
		MaxDocumentBytes:         maxDocumentBytes,
		DefaultCredits:           v.GetInt("INGEST_DEFAULT_CREDITS"),
		DefaultLabCredits:        v.GetInt("INGEST_DEFAULT_LAB_CREDITS"),
		DefaultRoomCapacity:      v.GetInt("INGEST_DEFAULT_ROOM_CAPACITY"),
		PlanWeeklyHours:          v.GetInt("INGEST_PLAN_WEEKLY_HOURS"),
		TimetableWeeklyHours:     v.GetInt("INGEST_TIMETABLE_WEEKLY_HOURS"),
		PlanEstimatedStudents:    v.GetInt("INGEST_PLAN_ESTIMATED_STUDENTS"),
		DefaultEstimatedStudents: v.GetInt("INGEST_DEFAULT_ESTIMATED_STUDENTS"),
		SemesterYear:             v.GetInt("INGEST_SEMESTER_YEAR"),
	}

	cfg.Resolver = ResolverConfig{
		CacheEnabled: v.GetBool("ENABLE_RESOLVER_CACHE"),
		CacheTTL:     parseDuration(v.GetString("RESOLVER_CACHE_TTL"), 10*time.Minute),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_AUTH", false)
	v.SetDefault("ADMIN_EMAIL", "admin@localhost")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "uta-ingest-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("INGEST_MAX_DOCUMENT_BYTES", 8*1024*1024)
	v.SetDefault("INGEST_DEFAULT_CREDITS", 3)
	v.SetDefault("INGEST_DEFAULT_LAB_CREDITS", 1)
	v.SetDefault("INGEST_DEFAULT_ROOM_CAPACITY", 50)
	v.SetDefault("INGEST_PLAN_WEEKLY_HOURS", 12)
	v.SetDefault("INGEST_TIMETABLE_WEEKLY_HOURS", 20)
	v.SetDefault("INGEST_PLAN_ESTIMATED_STUDENTS", 40)
	v.SetDefault("INGEST_DEFAULT_ESTIMATED_STUDENTS", 50)
	v.SetDefault("INGEST_SEMESTER_YEAR", 2025)

	v.SetDefault("ENABLE_RESOLVER_CACHE", false)
	v.SetDefault("RESOLVER_CACHE_TTL", "10m")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
