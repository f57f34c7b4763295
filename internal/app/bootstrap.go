package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/pkg/jwt"
	"resume-match/internal/queue"
	"resume-match/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the HTTP server, the websocket hub, and
// the in-process analysis consumer. The returned cleanup stops background
// work and closes infrastructure connections.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: int(cfg.Upload.MaxSizeBytes) + 1<<20,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	startAnalysisConsumer(consumerCtx, c)

	cleanup := func() error {
		stopConsumer()
		return c.Close()
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(c.Config.JWT)
	authMW := middleware.NewAuthMiddleware(jwtSvc)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewAuthHandler(c.Auth, jwtSvc),
		handler.NewResumeHandler(c.Resume),
		handler.NewJobHandler(c.Job),
		handler.NewMatchHandler(c.Matching),
		handler.NewGapHandler(c.Gap),
		handler.NewCareerHandler(c.Career),
		ws.NewHandler(c.Hub, c.Logger),
		authMW,
	)
	registry.Register(app)
}

// startAnalysisConsumer drains the analysis queue inside the server process
// so completion events reach connected websocket clients directly.
func startAnalysisConsumer(ctx context.Context, c *Container) {
	if c.Analysis == nil {
		c.Logger.Printf("[Queue] analysis consumer not started, structurer unavailable")
		return
	}

	go func() {
		err := c.Queue.ConsumeAnalysis(ctx, func(ctx context.Context, task queue.AnalysisTask) error {
			return c.Analysis.Process(ctx, task)
		})
		if err != nil && ctx.Err() == nil {
			c.Logger.Printf("[Queue] analysis consumer stopped | error=%v", err)
		}
	}()
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
