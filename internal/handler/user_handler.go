package handlers

import (
	"net/http"

	"womenhub/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,emailfmt"`
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Location string `json:"location" validate:"omitempty,max=100"`
}

type RegisterResponse struct {
	ID      int64  `json:"id,omitempty"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// Register stores a new member. A repeated email is answered with 200 and
// created=false.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.bind(w, r, &req) {
		return
	}

	id, created, err := h.UserService.Register(r.Context(), models.NewUser{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	if !created {
		writeSuccess(w, RegisterResponse{Created: false, Message: "This email is already registered"}, http.StatusOK)
		return
	}
	writeSuccess(w, RegisterResponse{ID: id, Created: true, Message: "Welcome to the community!"}, http.StatusCreated)
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,emailfmt"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.bind(w, r, &req) {
		return
	}

	err := h.ContactService.Submit(r.Context(), models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Thank you for reaching out! We'll get back to you soon."}, http.StatusAccepted)
}
