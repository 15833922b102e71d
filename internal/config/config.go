package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	UploadDir     string
	RedisAddr     string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailSender   string
}

func Load() *Config {
	_ = godotenv.Load()

	mailPort := 587
	if p := os.Getenv("MAIL_PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			mailPort = v
		}
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		MailHost:      os.Getenv("MAIL_SERVER"),
		MailPort:      mailPort,
		MailUsername:  os.Getenv("MAIL_USERNAME"),
		MailPassword:  os.Getenv("MAIL_PASSWORD"),
		MailSender:    os.Getenv("MAIL_DEFAULT_SENDER"),
	}

	if cfg.DBDSN == "" {
		logrus.Fatal("DB_DSN is not set")
	}
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.MailHost == "" {
		cfg.MailHost = "smtp.gmail.com"
	}
	if cfg.MailSender == "" {
		cfg.MailSender = "noreply@prodcrew.local"
	}

	return cfg
}
