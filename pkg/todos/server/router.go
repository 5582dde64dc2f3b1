package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ndjamen/todos/cmd/todos/config"
	"github.com/ndjamen/todos/pkg/todos/server/session"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the collectors the api reports to. Any of them may be nil.
type Metrics struct {
	Perf            *prometheus.HistogramVec
	UsersRegistered prometheus.Counter
	ToDosCreated    prometheus.Counter
}

func SetupRouter(
	config *config.Config,
	users store.UserStore,
	todos store.ToDoStore,
	metrics *Metrics,
) *chi.Mux {
	if metrics == nil {
		metrics = &Metrics{}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(instrument(metrics.Perf))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", config.Host},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", session.SecretHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/greet", greet)

	userRoutes(r, users, config.BcryptCost, metrics)
	todoRoutes(r, users, todos, metrics)

	return r
}

func userRoutes(r *chi.Mux, users store.UserStore, bcryptCost int, metrics *Metrics) {
	r.Post("/register", register(users, bcryptCost, metrics.UsersRegistered))
	r.Get("/users/{id}", getUser(users))
	r.Get("/user/validate", validateUser(users, bcryptCost))
}

func todoRoutes(r *chi.Mux, users store.UserStore, todos store.ToDoStore, metrics *Metrics) {
	r.Group(func(r chi.Router) {
		r.Use(session.SetUser(users))
		r.Use(session.MustUser())
		r.Get("/todo/all", listToDos(todos))
	})

	r.Post("/todo", createToDo(todos, metrics.ToDosCreated))
	r.Get("/todo/{id}", getToDo(todos))
	r.Put("/todo/{id}", updateToDo(todos))
	r.Patch("/todo/{id}", setDone(todos))
	r.Delete("/todo/{id}", deleteToDo(todos))
}

// instrument records the latency of every request by route pattern
func instrument(perf *prometheus.HistogramVec) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if perf == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			perf.WithLabelValues(r.Method, route, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
		}
		return http.HandlerFunc(fn)
	}
}
