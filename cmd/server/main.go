package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/internal/container"
	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/internal/metrics"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Configuration and logger
	cfg := config.MustLoad()
	cfg.ApplyLogging()
	logx.Info("Starting Hirely API Server...")

	// 2. Dependency container
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg)
	if err != nil {
		logx.Fatalf("store: %v", err)
	}
	defer c.Close()

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		logx.Fatalf("token service: %v", err)
	}

	// 3. Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "Hirely API",
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler,
	})

	// 4. Global middleware
	app.Use(recover.New())
	app.Use(httpx.CorrelationID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpx.HeaderCorrelationID,
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(httpx.RequestLogger())
	app.Use(metrics.FiberMiddleware())

	// 5. Health and metrics
	app.Get("/health", func(f *fiber.Ctx) error {
		if err := dbx.Ping(f.UserContext(), c.DB); err != nil {
			return err
		}
		return f.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	// 6. Recruitment routes
	c.RegisterRoutes(app, auth.NewMiddleware(tokens))

	// 7. Serve until a signal arrives
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		logx.Infof("Server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logx.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}
