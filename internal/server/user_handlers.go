package server

import (
	"encoding/json"
	"net/http"

	"chaos-planner/internal/model"
)

type userRequest struct {
	FName    string `json:"f_name"`
	LName    string `json:"l_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser responds with the generated id. The password is hashed by the
// store and never echoed back.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}
	if req.FName == "" || req.Email == "" || req.Password == "" {
		h.badRequest(w, "f_name, email and password are required")
		return
	}

	user := model.User{
		FName:    req.FName,
		LName:    req.LName,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.users.Create(r.Context(), &user); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, user.ID, http.StatusCreated)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.badRequest(w, "invalid user id")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, user, http.StatusOK)
}
