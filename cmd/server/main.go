package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rescribe/config"
	"rescribe/internal/database"
	"rescribe/internal/router"
	"rescribe/internal/service"
	"rescribe/pkg/detect"
	"rescribe/pkg/keystore"
	"rescribe/pkg/payment"
	"rescribe/pkg/storage"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var keys keystore.Store
	if cfg.Redis.Addr != "" {
		keys = keystore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password)
		log.Printf("[keys] using redis at %s", cfg.Redis.Addr)
	} else {
		keys = keystore.NewMemoryStore()
		log.Printf("[keys] no REDIS_ADDR set, using in-process key store")
	}

	var objectStore storage.ObjectStore
	if cfg.Storage.Endpoint != "" {
		objectStore, err = storage.NewMinioStore(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
		if err != nil {
			log.Fatalf("object store: %v", err)
		}
		log.Printf("[storage] archiving uploads to %s/%s", cfg.Storage.Endpoint, cfg.Storage.Bucket)
	}

	var paymentProvider payment.Provider
	if cfg.Stripe.SecretKey != "" {
		paymentProvider = payment.NewStripeProvider(cfg.Stripe.SecretKey)
	} else {
		paymentProvider = &payment.StubProvider{}
		log.Printf("[payment] no STRIPE_SECRET_KEY set, using stub provider")
	}

	var detector service.Detector = detect.NewClient(cfg.Detection.BaseURL)

	engine := router.Setup(cfg, db, router.Deps{
		Keys:            keys,
		Detector:        detector,
		PaymentProvider: paymentProvider,
		ObjectStore:     objectStore,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
