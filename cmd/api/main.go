package main

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/NusratJahanNila/plantnet-backend/internal/config"
	"github.com/NusratJahanNila/plantnet-backend/internal/db"
	"github.com/NusratJahanNila/plantnet-backend/internal/middleware"
	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/payment"
	"github.com/NusratJahanNila/plantnet-backend/internal/server"
	"github.com/NusratJahanNila/plantnet-backend/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.Plant{}, &model.Order{}, &model.User{}, &model.SellerRequest{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	creds, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceKey)
	if err != nil {
		log.Fatalf("invalid FB_SERVICE_KEY: %v", err)
	}
	authMw, err := middleware.NewAuthMiddleware(ctx, creds)
	if err != nil {
		log.Fatalf("firebase auth init error: %v", err)
	}

	var uploader *storage.Uploader
	if cfg.StorageBucket != "" {
		uploader, err = storage.NewUploader(ctx, cfg.StorageBucket, creds)
		if err != nil {
			log.Fatalf("storage init error: %v", err)
		}
		defer uploader.Close()
	}

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	srv := server.New(conn, cfg, authMw, gateway, uploader)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
