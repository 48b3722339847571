package main

import (
	"log"

	"olxsync/internal/config"
	"olxsync/internal/engine"
	"olxsync/internal/events"
	"olxsync/internal/feed"
	"olxsync/internal/journal"
	"olxsync/internal/logger"
	"olxsync/internal/olx"
	"olxsync/internal/skumap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// The identity map must load before anything touches the network; a
	// missing or unreadable map would turn every update into an insert.
	logger.Info("Loading SKU map from %s", cfg.SKUMapPath)
	skus, err := skumap.Load(cfg.SKUMapPath)
	if err != nil {
		logger.Fatal("Failed to load SKU map: %v", err)
	}
	logger.Info("SKU map loaded, %d entries", skus.Len())

	feeds := feed.NewClient(logger)

	logger.Info("Downloading product feed...")
	catalog, err := feeds.FetchCatalog(cfg.ProductsFeedURL)
	if err != nil {
		logger.Fatal("Failed to load product feed: %v", err)
	}

	logger.Info("Downloading price feed...")
	priceList, err := feeds.FetchPriceList(cfg.PricesFeedURL)
	if err != nil {
		logger.Fatal("Failed to load price feed: %v", err)
	}
	prices := feed.BuildPriceIndex(priceList)
	logger.Info("Feeds parsed: %d products, %d prices", len(catalog.Products), len(prices))

	gateway := olx.NewClient(cfg.APIBaseURL, logger)
	token, err := gateway.Authenticate(cfg.Username, cfg.Password)
	if err != nil {
		logger.Fatal("Login failed: %v", err)
	}
	logger.Info("OLX login success")

	var jrnl *journal.Journal
	if cfg.DatabaseURL != "" {
		jrnl, err = journal.Open(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Warn("Sync journal disabled: %v", err)
			jrnl = nil
		}
	}

	var publisher *events.Publisher
	if cfg.KafkaBrokers != "" {
		publisher = events.NewPublisher(cfg.KafkaBrokers, logger)
		defer publisher.Close()
	}

	e := engine.New(cfg.Rules, logger, gateway, feeds, skus, jrnl, publisher)
	summary := e.Run(catalog.Products, prices, token)

	// Persisted once, at the very end; an aborted run leaves the previous
	// map untouched.
	if err := skus.Save(); err != nil {
		logger.Fatal("Failed to save SKU map: %v", err)
	}

	logger.Info("Sync finished: %d inserted, %d updated, %d skipped, %d failed",
		summary.Inserted, summary.Updated, summary.Skipped, summary.Failed)
}
