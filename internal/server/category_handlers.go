package server

import (
	"encoding/json"
	"net/http"

	"chaos-planner/internal/model"
	"chaos-planner/internal/service"
)

// ListCategories returns every category with its tasks bucketed into
// todo/done.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	views, err := h.categories.Views(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if views == nil {
		views = []service.CategoryView{}
	}
	h.respond(w, views, http.StatusOK)
}

// GetCategory returns the plain record in view shape: the buckets stay
// empty, the aggregation only runs on the collection route.
func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid category id")
		return
	}

	category, err := h.categories.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, emptyView(*category), http.StatusOK)
}

// CreateCategory responds with the generated id alone.
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	category, err := h.categories.Create(r.Context(), input)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, category.ID, http.StatusCreated)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid category id")
		return
	}

	var input service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	category, err := h.categories.Update(r.Context(), id, input)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, emptyView(*category), http.StatusOK)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid category id")
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, "Deleted Item", http.StatusOK)
}

func emptyView(category model.Category) service.CategoryView {
	return service.CategoryView{
		Category:  category,
		TasksTodo: []model.Task{},
		TasksDone: []model.Task{},
	}
}
