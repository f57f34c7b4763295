package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"resume-match/internal/config"
	dbpostgres "resume-match/internal/database/postgres"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/market"
	"resume-match/internal/repository"
)

// Refreshes the trending skills table from a job board. Meant to run on a
// schedule; the HTTP server never blocks on market data.
func main() {
	baseURL := flag.String("base_url", "", "job board base URL")
	pages := flag.Int("pages", 2, "listing pages to crawl")
	workers := flag.Int("workers", 4, "concurrent posting fetches")
	flag.Parse()

	if strings.TrimSpace(*baseURL) == "" {
		log.Fatalf("provide -base_url")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	connCtx, connCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connCancel()

	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	redisCache := cache.NewRedis(cfg.Redis, log.Default())
	defer func() {
		_ = redisCache.Close()
	}()

	trendings := repository.NewPostgresTrendingSkillRepository(db)
	collector := market.NewCollector(trendings, redisCache, log.Default(), *baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := collector.Refresh(ctx, *pages, *workers); err != nil {
		log.Fatalf("market refresh failed: %v", err)
	}
	log.Printf("market refresh done")
}
