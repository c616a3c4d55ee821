package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"job-portal/internal/app"
	"job-portal/internal/auth"
	"job-portal/internal/config"

	"go.uber.org/zap"
)

func main() {
	var req auth.CreateSuperuserRequest
	flag.StringVar(&req.Email, "email", "", "superuser email (required)")
	flag.StringVar(&req.Name, "name", "Administrator", "display name")
	flag.StringVar(&req.Password, "password", os.Getenv("SUPERUSER_PASSWORD"), "password, defaults to $SUPERUSER_PASSWORD")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u, err := app.CreateSuperuser(ctx, cfg, req)
	if err != nil {
		logger.Fatal("create superuser failed", zap.Error(err))
	}
	logger.Info("superuser created", zap.String("id", u.ID), zap.String("email", u.Email))
}
