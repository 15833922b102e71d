package main

import (
	"context"
	"fmt"

	"prodcrew/internal/config"
	"prodcrew/internal/database"
	"prodcrew/internal/mailer"
	"prodcrew/internal/server"
	"prodcrew/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		logrus.Fatalf("seed admin: %v", err)
	}

	uploads, err := storage.New(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("upload dir: %v", err)
	}

	notifier := mailer.NewSMTP(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword, cfg.MailSender)

	// Search caching is optional; run without redis when unconfigured
	// or unreachable.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.WithError(err).Warn("redis unavailable, search caching disabled")
			rdb = nil
		}
	}

	r := server.NewRouter(cfg, db, uploads, notifier, rdb)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
