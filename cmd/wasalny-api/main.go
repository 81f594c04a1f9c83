// README: Entry point; loads config, wires services, starts the HTTP server and shuts it down on signal.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wasalny/internal/config"
	httptransport "wasalny/internal/http"
	"wasalny/internal/infra"
	"wasalny/internal/service"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := service.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("startup", zap.Error(err))
	}
	defer app.Close()

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Catalog:  app.Catalog,
		Pricing:  app.Pricing,
		Booking:  app.Booking,
		Location: cfg.Location(),
		HTTP:     cfg.HTTP,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("strategy", app.Pricing.Strategy().Name()),
		zap.String("catalog", cfg.Catalog.Source),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}
