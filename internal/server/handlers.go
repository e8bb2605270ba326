package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chaos-planner/internal/repository"
	"chaos-planner/internal/service"
)

// Handlers translates HTTP requests into service calls and results into
// JSON responses.
type Handlers struct {
	tasks      *service.TaskService
	categories *service.CategoryService
	durations  *service.DurationService
	users      *repository.UserRepository
}

func NewHandlers(tasks *service.TaskService, categories *service.CategoryService, durations *service.DurationService, users *repository.UserRepository) *Handlers {
	return &Handlers{
		tasks:      tasks,
		categories: categories,
		durations:  durations,
		users:      users,
	}
}

func (h *Handlers) respond(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("encode response: %v", err)
		}
	}
}

// respondError maps the error kind onto a status and sends the message as a
// JSON string, matching the wire contract of the rest of the API.
func (h *Handlers) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	h.respond(w, err.Error(), status)
}

func (h *Handlers) badRequest(w http.ResponseWriter, message string) {
	h.respond(w, message, http.StatusBadRequest)
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
