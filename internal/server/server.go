package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server wires the HTTP boundary: routing, CORS and graceful shutdown.
type Server struct {
	http *http.Server
}

func New(addr, corsOrigin string, h *Handlers) *Server {
	router := mux.NewRouter()

	router.HandleFunc("/tasks", h.ListTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", h.UpdateTasks).Methods(http.MethodPut)
	router.HandleFunc("/task", h.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/task", h.UpdateTask).Methods(http.MethodPut)
	router.HandleFunc("/task/{id}", h.GetTask).Methods(http.MethodGet)
	router.HandleFunc("/task/{id}", h.DeleteTask).Methods(http.MethodDelete)

	router.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	router.HandleFunc("/category", h.CreateCategory).Methods(http.MethodPost)
	router.HandleFunc("/category/{id}", h.GetCategory).Methods(http.MethodGet)
	router.HandleFunc("/category/{id}", h.UpdateCategory).Methods(http.MethodPut)
	router.HandleFunc("/category/{id}", h.DeleteCategory).Methods(http.MethodDelete)

	router.HandleFunc("/durations", h.ListDurations).Methods(http.MethodGet)
	router.HandleFunc("/duration", h.CreateDuration).Methods(http.MethodPost)
	router.HandleFunc("/duration", h.UpdateDuration).Methods(http.MethodPut)
	router.HandleFunc("/duration/{id}", h.GetDuration).Methods(http.MethodGet)
	router.HandleFunc("/duration/{id}", h.DeleteDuration).Methods(http.MethodDelete)

	router.HandleFunc("/user", h.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/user/{id}", h.GetUser).Methods(http.MethodGet)

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           allowCORS(corsOrigin, router),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// allowCORS admits the configured browser origin. Wrapping outside the
// router keeps preflight requests from falling into the 405 handler.
func allowCORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
