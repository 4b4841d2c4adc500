package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/internal/container"
	"github.com/Abraxas-365/hirely/internal/shell"
	"github.com/Abraxas-365/hirely/pkg/logx"
)

func main() {
	cfg := config.MustLoad()
	cfg.ApplyLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg)
	if err != nil {
		logx.Fatalf("store: %v", err)
	}
	defer c.Close()

	err = shell.New(c.Shell(), os.Stdin, os.Stdout).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logx.Errorf("console: %v", err)
	}
}
