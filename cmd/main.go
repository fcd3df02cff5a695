package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"complaintdesk/backend/internal/api/handler"
	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/notify"
	"complaintdesk/backend/internal/storage"
)

func setupNotifications(cfg *config.Config) *notify.Dispatcher {
	var mailer notify.Mailer
	if cfg.MailConfigured() {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.AdminEmail)
	} else {
		log.Println("Warning: EMAIL_USER / EMAIL_PASS / EMAIL_ADMIN not fully set, email notifications disabled")
	}

	var publisher notify.Publisher
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("Warning: Redis at %s unreachable (%v), event publication disabled", cfg.RedisAddr, err)
		} else {
			publisher = notify.NewRedisPublisher(rdb)
		}
	}

	return notify.NewDispatcher(mailer, publisher)
}

func main() {
	log.Println("Starting complaint service...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// Serving requests without a store is impossible.
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is not set")
	}

	connector := storage.NewConnector(cfg.MongoURI)
	store := storage.NewStorageService(connector, cfg.MongoDatabase)

	// Connect eagerly so misconfiguration shows up in the logs right
	// away; a failure here is not fatal, the first request retries.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := connector.EnsureConnected(ctx); err != nil {
		log.Printf("Warning: initial MongoDB connection failed: %v", err)
	}
	cancel()

	dispatcher := setupNotifications(cfg)
	go dispatcher.Run()

	svc := complaint.NewService(store, dispatcher)

	r := gin.Default()
	r.Use(handler.CORS(), handler.RequestID())
	handler.NewHandler(svc).RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.ServerAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on %s", cfg.ServerAddr)
	log.Fatal(server.ListenAndServe())
}
