package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/app"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/bootstrap"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/config"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/logger"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "YAML config file (default $"+config.FileEnvKey+")")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configFile)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, cfg, log); err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.StartHTTPServer(
		ctx,
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     cfg.ReadTimeout,
			WriteTimeout:    cfg.WriteTimeout,
			IdleTimeout:     cfg.IdleTimeout,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
	); err != nil {
		log.Fatal("http server failed", zap.Error(err))
	}
}
