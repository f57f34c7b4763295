package routes

import (
	"github.com/gofiber/fiber/v3"

	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/ws"
)

type Registry struct {
	health *handler.HealthHandler
	auth   *handler.AuthHandler
	resume *handler.ResumeHandler
	job    *handler.JobHandler
	match  *handler.MatchHandler
	gap    *handler.GapHandler
	career *handler.CareerHandler
	events *ws.Handler

	authMW *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	resume *handler.ResumeHandler,
	job *handler.JobHandler,
	match *handler.MatchHandler,
	gap *handler.GapHandler,
	career *handler.CareerHandler,
	events *ws.Handler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health: health,
		auth:   auth,
		resume: resume,
		job:    job,
		match:  match,
		gap:    gap,
		career: career,
		events: events,
		authMW: authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")

	r.auth.RegisterRoutes(v1.Group("/auth"))

	protected := r.authMW.Middleware()

	resumes := v1.Group("/resumes", protected)
	r.resume.RegisterRoutes(resumes)
	r.match.RegisterRoutes(resumes)
	r.gap.RegisterRoutes(resumes)
	r.career.RegisterRoutes(resumes)

	r.job.RegisterRoutes(v1.Group("/jobs", protected))
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.events == nil {
		return
	}
	app.Get("/ws/events", r.events.HandleEventsWS, r.authMW.Middleware())
}
