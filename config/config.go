// file: config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	ListenAddr string
	MySQLDSN   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	UploadDir      string
	StagingDir     string
	MaxUploadBytes int64
	AllowedMIMEs   []string
	AllowedExts    []string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

var App AppConfig

// Load reads .env (if present) and populates App. Missing critical
// variables fall back to development defaults.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	App = AppConfig{
		ListenAddr: GetEnvAsStr("LISTEN_ADDR", ":8080"),
		MySQLDSN: GetEnvAsStr("MYSQL_DSN",
			"root:123456@tcp(localhost:3306)/innohub?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr:     GetEnvAsStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnvAsStr("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0, false),

		JWTSecret: GetEnvAsStr("JWT_SECRET", "change-me-in-production"),

		UploadDir:      GetEnvAsStr("UPLOAD_DIR", "./uploads"),
		StagingDir:     GetEnvAsStr("STAGING_DIR", "./uploads/.staging"),
		MaxUploadBytes: GetEnvAsInt64("MAX_UPLOAD_BYTES", 10<<20),
		AllowedMIMEs: GetEnvAsList("ALLOWED_MIMES",
			"application/pdf,application/zip,image/png,image/jpeg,text/plain,"+
				"application/msword,application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
		AllowedExts: GetEnvAsList("ALLOWED_EXTS", ".pdf,.zip,.png,.jpg,.jpeg,.txt,.doc,.docx"),

		SMTPHost: GetEnvAsStr("SMTP_HOST", ""),
		SMTPPort: GetEnvAsStr("SMTP_PORT", "587"),
		SMTPUser: GetEnvAsStr("SMTP_USER", ""),
		SMTPPass: GetEnvAsStr("SMTP_PASS", ""),
		MailFrom: GetEnvAsStr("MAIL_FROM", "no-reply@innohub.local"),
	}
}

// GetEnv fetches a key or returns an empty string.
// Critical env vars should use this function.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	log.Printf("Critical: Environment variable %s not set\n", key)
	return ""
}

// GetEnvAsStr fetches a key or returns a fallback value.
func GetEnvAsStr(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvAsInt fetches a key as integer, optionally requiring it to be
// positive, or returns the fallback.
func GetEnvAsInt(key string, fallback int, ensurePositive bool) int {
	if valueStr, ok := os.LookupEnv(key); ok {
		if value, err := strconv.Atoi(valueStr); err == nil {
			if ensurePositive && value <= 0 {
				log.Printf("Warning: Environment variable %s is not positive, using fallback value\n", key)
				return fallback
			}
			return value
		}
		log.Printf("Warning: Environment variable %s is not an integer, using fallback value\n", key)
	}
	return fallback
}

func GetEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, ok := os.LookupEnv(key); ok {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
		log.Printf("Warning: Environment variable %s is not an integer, using fallback value\n", key)
	}
	return fallback
}

// GetEnvAsList fetches a comma-separated key as a trimmed string slice.
func GetEnvAsList(key string, fallback string) []string {
	raw := GetEnvAsStr(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
