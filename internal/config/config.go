package config

import (
	"os"
	"strconv"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	DatabaseURL string
	RedisURL    string
	Port        string
	FrontendURL string
	JWTSecret   string
	R2          R2Config
	Email       EmailConfig

	// Etkinlik silinince albüm/medya/blob kayıtları da silinsin mi?
	// false ise kayıtlar denetim için yerinde bırakılır.
	CascadeOnDelete bool
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	cfg.FrontendURL = os.Getenv("FRONTEND_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	// Email config
	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	// CASCADE_ON_DELETE açıkça "false" verilmedikçe true kabul edilir
	cfg.CascadeOnDelete = true
	if v := os.Getenv("CASCADE_ON_DELETE"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.CascadeOnDelete = parsed
		}
	}

	return cfg
}
