package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-manager/internal/config"
	"contact-manager/internal/database"
	"contact-manager/internal/logger"
	"contact-manager/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("configuration loaded", zap.Stringer("config", cfg))

	db, err := database.Open(cfg, zlog)
	if err != nil {
		zlog.Fatal("open db", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Error("close db", zap.Error(err))
		}
	}()

	r, err := server.NewRouter(cfg, db, zlog)
	if err != nil {
		zlog.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
