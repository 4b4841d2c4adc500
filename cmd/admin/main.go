package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/hirely/internal/admin"
	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/pkg/logx"
)

func main() {
	cfg := config.MustLoad()
	cfg.ApplyLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := admin.Run(ctx, cfg, os.Args[1:], os.Stdout)
	if err != nil {
		logx.Errorf("hirely-admin: %v", err)
	}
	stop()
	os.Exit(admin.ExitCode(err))
}
