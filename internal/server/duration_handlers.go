package server

import (
	"encoding/json"
	"net/http"

	"chaos-planner/internal/model"
	"chaos-planner/internal/service"
)

func (h *Handlers) ListDurations(w http.ResponseWriter, r *http.Request) {
	durations, err := h.durations.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if durations == nil {
		durations = []model.Duration{}
	}
	h.respond(w, durations, http.StatusOK)
}

func (h *Handlers) GetDuration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid duration id")
		return
	}

	duration, err := h.durations.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, duration, http.StatusOK)
}

func (h *Handlers) CreateDuration(w http.ResponseWriter, r *http.Request) {
	var input service.DurationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	duration, err := h.durations.Create(r.Context(), input)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, duration, http.StatusCreated)
}

func (h *Handlers) UpdateDuration(w http.ResponseWriter, r *http.Request) {
	var duration model.Duration
	if err := json.NewDecoder(r.Body).Decode(&duration); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	updated, err := h.durations.Update(r.Context(), duration)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, updated, http.StatusOK)
}

func (h *Handlers) DeleteDuration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid duration id")
		return
	}

	if err := h.durations.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, "Deleted Item", http.StatusOK)
}
