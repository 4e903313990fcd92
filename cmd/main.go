package main

import (
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yanamull/Example-of-LLM-translater/internal/api"
	"github.com/yanamull/Example-of-LLM-translater/internal/config"
	"github.com/yanamull/Example-of-LLM-translater/internal/infrastructure"
	"github.com/yanamull/Example-of-LLM-translater/internal/web"
)

func main() {
	// Optional .env for local runs, deployments set the environment
	// directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("err", err.Error()))
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"*"},
			AllowHeaders:     []string{"*"},
			AllowCredentials: true,
		}),
	)

	llmClient := infrastructure.NewLLMClient(cfg.APIURL, cfg.Model, cfg.APIKey)
	translatorServer := api.NewTranslatorServer(llmClient, *logger)

	e.POST("/translate", translatorServer.Translate)
	e.GET("/health", translatorServer.Health)
	web.Register(e)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	logger.Info("starting translation gateway", slog.String("addr", addr), slog.String("model", cfg.Model))
	slog.Error("server has failed", slog.Any("err", e.Start(addr)))
}
