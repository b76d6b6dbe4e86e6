package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bid-engine/internal/availability"
	bidding "bid-engine/internal/biddingService"
	"bid-engine/internal/config"
	"bid-engine/internal/gateway"
	model "bid-engine/internal/models"
	"bid-engine/internal/notification"
	payment "bid-engine/internal/paymentService"
	"bid-engine/internal/repository"
	"bid-engine/internal/server"
	"bid-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		logFile := utils.SetOutputFile(cfg.LogFile)
		defer logFile.Close()
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, closeRepo := openRepository(cfg)
	defer closeRepo()

	var sender notification.Sender = notification.LogSender{}
	if cfg.SMTPEnabled() {
		sender = notification.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}
	dispatcher := notification.NewDispatcher(sender, cfg.NotifyWorkers)
	defer dispatcher.Close()

	stripeGW := gateway.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	checker := availability.NewChecker(repo)

	biddingSvc := bidding.NewBiddingService(repo, checker, dispatcher)
	gw := gateway.NewBreakerGateway(stripeGW, "stripe", gateway.DefaultBreakerSettings)
	paymentSvc := payment.NewPaymentService(repo, biddingSvc, checker, gw, dispatcher, cfg.Currency)

	router := server.SetupRouter(biddingSvc, paymentSvc, stripeGW)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting bid engine", map[string]any{"port": cfg.Port, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// openRepository connects to PostgreSQL when DATABASE_URL is set, otherwise it
// returns a seeded in-memory store
func openRepository(cfg *config.Config) (repository.BookingDB, func()) {
	if cfg.DatabaseURL == "" {
		repo := repository.NewMemoryRepo()
		prepopulateListings(repo)
		utils.Warn("DATABASE_URL not set, using in-memory store with sample listings", nil)
		return repo, func() {}
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		utils.Fatal("failed to reach database", map[string]any{"error": err.Error()})
	}
	if err := repository.Migrate(db); err != nil {
		utils.Fatal("failed to migrate database", map[string]any{"error": err.Error()})
	}

	return repository.NewPostgresRepo(db), func() { _ = db.Close() }
}

// prepopulateListings adds sample listings to the in-memory repo
func prepopulateListings(repo *repository.MemoryRepo) {
	christmas, _ := model.ParseDay(fmt.Sprintf("%d-12-25", time.Now().Year()))

	listings := []model.Listing{
		{
			ListingID: "listing1", OwnerID: "hotel1", OwnerEmail: "frontdesk@harbour-inn.example",
			Title: "Harbour Inn Double Room", Status: model.ListingLive,
			MinimumBid: decimal.NewFromInt(80), RetailPrice: decimal.NewFromInt(140),
			MaxInventory: 3, AutoAcceptAboveMinimum: true,
			BlackoutDates: []time.Time{christmas},
		},
		{
			ListingID: "listing2", OwnerID: "hotel2", OwnerEmail: "reservations@alpine-lodge.example",
			Title: "Alpine Lodge Suite", Status: model.ListingLive,
			MinimumBid: decimal.NewFromInt(200), RetailPrice: decimal.NewFromInt(320),
			MaxInventory: 1,
		},
		{
			ListingID: "listing3", OwnerID: "hotel2", OwnerEmail: "reservations@alpine-lodge.example",
			Title: "Alpine Lodge Bunk", Status: model.ListingPaused,
			MinimumBid: decimal.NewFromInt(30), RetailPrice: decimal.NewFromInt(55),
			MaxInventory: 6, AutoAcceptAboveMinimum: true,
		},
	}

	for _, l := range listings {
		repo.AddListing(l)
	}
}
