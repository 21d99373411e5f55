package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/api"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/security"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/store"
	"go.uber.org/zap"
)

const secretKeyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func main() {
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		// Sessions are in-memory anyway, so a per-boot secret only
		// invalidates cookies across restarts.
		generated, err := security.RandomString(48, secretKeyAlphabet)
		if err != nil {
			log.Fatalf("secret key generation failed: %v", err)
		}
		secretKey = generated
	}
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zapLogger.Sync()

	sessionStore := store.NewSeededStore(zapLogger)
	handler := api.NewHandler(sessionStore, secretKey, cookieSecure, zapLogger)

	app := fiber.New(fiber.Config{
		AppName:               "Rooted Together",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("Rooted Together listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
