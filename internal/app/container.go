package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database"
	"resume-match/internal/database/migration"
	dbpostgres "resume-match/internal/database/postgres"
	"resume-match/internal/database/seeder"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/llm"
	"resume-match/internal/queue"
	"resume-match/internal/repository"
	ucanalysis "resume-match/internal/usecase/analysis"
	ucauth "resume-match/internal/usecase/auth"
	uccareer "resume-match/internal/usecase/career"
	ucgap "resume-match/internal/usecase/gap"
	ucjob "resume-match/internal/usecase/job"
	ucmatching "resume-match/internal/usecase/matching"
	ucresume "resume-match/internal/usecase/resume"
	"resume-match/internal/ws"
)

// Container wires configuration, infrastructure, and usecases. The HTTP
// server and the analysis worker both build on top of it.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Queue *queue.Rabbit
	Hub   *ws.Hub

	Auth     *ucauth.Service
	Resume   *ucresume.Service
	Job      *ucjob.Service
	Matching *ucmatching.Service
	Gap      *ucgap.Service
	Career   *uccareer.Service
	Analysis *ucanalysis.Service
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := (migration.Runner{Logger: logger}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run seeders: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	rabbit, err := queue.Dial(cfg.Rabbit, logger)
	if err != nil {
		_ = db.Close()
		_ = redisCache.Close()
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	users := repository.NewPostgresUserRepository(db)
	resumes := repository.NewPostgresResumeRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	results := repository.NewPostgresMatchResultRepository(db)
	trendings := repository.NewPostgresTrendingSkillRepository(db)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Queue:  rabbit,
		Hub:    ws.NewHub(logger),

		Auth:     ucauth.NewService(users),
		Resume:   ucresume.NewService(resumes, rabbit, cfg.Upload.MaxSizeBytes, logger),
		Job:      ucjob.NewService(jobs),
		Matching: ucmatching.NewService(resumes, jobs, results, redisCache, logger),
		Gap:      ucgap.NewService(resumes, trendings, redisCache, logger),
		Career:   uccareer.NewService(resumes, redisCache, logger),
	}

	structurer, err := newStructurer(cfg, logger)
	if err != nil {
		logger.Printf("[LLM] generator unavailable, resume analysis disabled | error=%v", err)
	} else {
		c.Analysis = ucanalysis.NewService(resumes, jobs, results, structurer, redisCache, logger)
	}

	return c, nil
}

func newStructurer(cfg config.Config, logger *log.Logger) (*llm.Structurer, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gen, err := llm.NewGenerator(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}
	return llm.NewStructurer(gen, logger), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var firstErr error
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
