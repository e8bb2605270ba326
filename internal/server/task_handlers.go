package server

import (
	"encoding/json"
	"net/http"

	"chaos-planner/internal/model"
	"chaos-planner/internal/service"
)

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	h.respond(w, tasks, http.StatusOK)
}

func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid task id")
		return
	}

	task, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, task, http.StatusOK)
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var input service.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	task, err := h.tasks.Create(r.Context(), input)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, task, http.StatusCreated)
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var task model.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	updated, err := h.tasks.Update(r.Context(), task)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, updated, http.StatusOK)
}

// UpdateTasks applies a batch of full-row updates in input order. On failure
// the error body names the failing element and how many updates persisted
// before it.
func (h *Handlers) UpdateTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []model.Task
	if err := json.NewDecoder(r.Body).Decode(&tasks); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	updated, err := h.tasks.UpdateAll(r.Context(), tasks)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, map[string]int{"updated": updated}, http.StatusOK)
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid task id")
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, "Deleted Item", http.StatusOK)
}
