package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"foodkiosk/internal/config"
	"foodkiosk/internal/domain"
	httpapi "foodkiosk/internal/http"
	"foodkiosk/internal/logger"
	"foodkiosk/internal/repository"
	"foodkiosk/internal/service"
)

// starter catalog used when SEED_MENU is on
var seedMenu = []domain.MenuItem{
	{Price: decimal.NewFromInt(10), Name: "Regular Burger", Description: "A really tasty burger."},
	{Price: decimal.NewFromInt(11), Name: "Irregular Burger", Description: "An even tastier burger."},
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	store := repository.NewMemoryStore()
	ordersRepo := repository.NewMemoryOrders(store)
	receiptsRepo := repository.NewMemoryReceipts(store)
	tx := repository.NewMemoryTx(store)

	menuSvc := service.NewMenuService(store, lg)
	ordersSvc := service.NewOrderService(store, ordersRepo, tx, lg)
	receiptsSvc := service.NewReceiptService(ordersRepo, receiptsRepo, service.ReceiptDefaults{
		CashierName: cfg.DefaultCashier,
		Message:     cfg.ReceiptMessage,
	}, lg)

	if cfg.SeedMenu {
		for _, m := range seedMenu {
			if _, err := menuSvc.Create(context.Background(), m); err != nil {
				lg.WithError(err).Fatal("failed to seed menu")
			}
		}
	}

	srv := httpapi.NewServer(menuSvc, ordersSvc, receiptsSvc, lg)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Engine(),
	}

	go func() {
		lg.WithField("addr", httpServer.Addr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		lg.WithError(err).Error("shutdown error")
	}
	lg.WithFields(logrus.Fields{"timeout": cfg.ShutdownTimeout.String()}).Info("server stopped")
}
