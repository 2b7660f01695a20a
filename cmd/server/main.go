package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/rl1809/bookstore/internal/adapter/handler"
	"github.com/rl1809/bookstore/internal/adapter/storage"
	"github.com/rl1809/bookstore/internal/config"
	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/core/service"
)

func main() {
	app := &cli.App{
		Name:   "bookstore",
		Usage:  "in-memory bookstore storefront API",
		Action: runServer,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func runServer(c *cli.Context) error {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	catalogRepo := storage.NewMemoryCatalog(storage.SeedBooks())
	var seedOrders []domain.Order
	if cfg.SeedDemoOrders {
		seedOrders = storage.SeedOrders()
	}
	orderRepo := storage.NewMemoryOrderStore(seedOrders)
	cartRepo := storage.NewMemoryCartStore()
	sessionRepo := storage.NewMemorySessionStore()
	log.WithFields(log.Fields{
		"books":  len(storage.SeedBooks()),
		"orders": len(seedOrders),
	}).Info("seeded in-memory stores")

	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(cartRepo)
	authService := service.NewAuthService(sessionRepo, service.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	orderService := service.NewOrderService(orderRepo, cartRepo)

	httpHandler := handler.NewHTTPHandler(catalogService, cartService, authService, orderService)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpHandler.Router(),
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP server shutdown")
	}
	log.Info("HTTP server stopped")

	return nil
}
