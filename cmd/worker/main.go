package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"resume-match/internal/app"
	"resume-match/internal/config"
	"resume-match/internal/queue"
)

// Standalone analysis worker. The server runs the same consumer in-process;
// this binary exists for deployments that scale parsing separately.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	if c.Analysis == nil {
		log.Fatalf("GEMINI_API_KEY is required for the analysis worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	c.Logger.Printf("[Analysis] worker started | queue=%s", cfg.Rabbit.AnalysisQueue)

	err = c.Queue.ConsumeAnalysis(ctx, func(ctx context.Context, task queue.AnalysisTask) error {
		return c.Analysis.Process(ctx, task)
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer error: %v", err)
	}
}
