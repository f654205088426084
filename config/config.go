package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config func to get env value
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("[CONFIG] no .env file, using process environment")
		}
	})
	return os.Getenv(key)
}

type Settings struct {
	Port                 string
	DataSource           string
	RedisAddr            string
	CacheTTLSeconds      int
	ReloadMinutes        int
	CacheWarmCron        string
	JWTSecret            string
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	SMTPFrom             string
	CORSOrigins          string
	ExportRecipientLimit int
}

// Load reads every setting once, falling back to defaults for empty values.
func Load() Settings {
	return Settings{
		Port:                 withDefault(Config("PORT"), "8002"),
		DataSource:           withDefault(Config("DATA_SOURCE"), "data/makkanya_data.json"),
		RedisAddr:            Config("REDIS_ADDR"),
		CacheTTLSeconds:      intOr(Config("CACHE_TTL_SECONDS"), 300),
		ReloadMinutes:        intOr(Config("DATASET_RELOAD_MINUTES"), 0),
		CacheWarmCron:        Config("CACHE_WARM_CRON"),
		JWTSecret:            Config("JWT_SECRET"),
		SMTPHost:             Config("SMTP_HOST"),
		SMTPPort:             intOr(Config("SMTP_PORT"), 587),
		SMTPUsername:         Config("SMTP_USERNAME"),
		SMTPPassword:         Config("SMTP_PASSWORD"),
		SMTPFrom:             Config("SMTP_FROM"),
		CORSOrigins:          withDefault(Config("CORS_ORIGINS"), "http://localhost:5173"),
		ExportRecipientLimit: intOr(Config("EXPORT_RECIPIENT_LIMIT"), 5),
	}
}

func (s Settings) MailEnabled() bool {
	return s.SMTPHost != "" && s.SMTPFrom != ""
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func intOr(v string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}
