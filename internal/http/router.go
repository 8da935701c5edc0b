package http

import (
	"net/http"

	"taskdeck/internal/auth"
	"taskdeck/internal/config"
	"taskdeck/internal/http/handler"
	mw "taskdeck/internal/http/middleware"
	"taskdeck/internal/http/respond"
	"taskdeck/internal/task"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Deps are the stores and services the routes close over. Tests swap in
// in-memory fakes here.
type Deps struct {
	Users auth.UserStore
	Tasks task.Store
	JWT   *auth.JWT

	BcryptCost int
}

func NewRouter(cfg config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(mw.Recover)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Task Management API Server is running!",
			"version": "1.0.0",
			"endpoints": map[string]any{
				"auth":  "/api/register, /api/login",
				"user":  "/api/profile",
				"tasks": "/api/tasks",
			},
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{Users: deps.Users, JWT: deps.JWT, BcryptCost: deps.BcryptCost}
	ph := &handler.ProfileHandler{Users: deps.Users}
	th := &handler.TaskHandler{Store: deps.Tasks}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", ah.Register)
		r.Post("/login", ah.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(deps.JWT))

			r.Get("/profile", ph.Profile)

			r.Get("/tasks", th.List)
			r.Post("/tasks", th.Create)
			r.Get("/tasks/{id}", th.Get)
			r.Put("/tasks/{id}", th.Update)
			r.Delete("/tasks/{id}", th.Delete)
		})
	})

	return r
}
