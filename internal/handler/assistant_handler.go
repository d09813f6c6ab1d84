package handlers

import (
	"net/http"

	"womenhub/internal/apperror"
	"womenhub/internal/assistant"
)

type AssistantResponse struct {
	Reply    string `json:"reply"`
	Mode     string `json:"mode"`
	Fallback bool   `json:"fallback"`
}

func (h *Handlers) reply(w http.ResponseWriter, text string) {
	writeSuccess(w, AssistantResponse{
		Reply:    text,
		Mode:     h.Assistant.Mode(),
		Fallback: assistant.IsFallback(text),
	}, http.StatusOK)
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	Context string `json:"context" validate:"max=200"`
}

func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !h.bind(w, r, &req) {
		return
	}
	h.reply(w, h.Assistant.Chat(r.Context(), req.Message, req.Context))
}

type JobAdviceRequest struct {
	Skills     string `json:"skills" validate:"required,max=500"`
	Experience string `json:"experience" validate:"max=100"`
}

func (h *Handlers) RecommendJobs(w http.ResponseWriter, r *http.Request) {
	var req JobAdviceRequest
	if !h.bind(w, r, &req) {
		return
	}
	h.reply(w, h.Assistant.RecommendJobs(r.Context(), req.Skills, req.Experience))
}

type CourseAdviceRequest struct {
	Interests string `json:"interests" validate:"required,max=500"`
	Level     string `json:"level" validate:"max=50"`
}

func (h *Handlers) RecommendCourses(w http.ResponseWriter, r *http.Request) {
	var req CourseAdviceRequest
	if !h.bind(w, r, &req) {
		return
	}
	h.reply(w, h.Assistant.RecommendCourses(r.Context(), req.Interests, req.Level))
}

type MealsRequest struct {
	Breakfast string `json:"breakfast" validate:"max=500"`
	Lunch     string `json:"lunch" validate:"max=500"`
	Dinner    string `json:"dinner" validate:"max=500"`
	Snacks    string `json:"snacks" validate:"max=500"`
}

func (h *Handlers) EstimateMacros(w http.ResponseWriter, r *http.Request) {
	var req MealsRequest
	if !h.bind(w, r, &req) {
		return
	}
	if req.Breakfast == "" && req.Lunch == "" && req.Dinner == "" && req.Snacks == "" {
		writeAppError(w, apperror.ValidationFailed("breakfast", "Enter at least one meal"))
		return
	}

	macros := h.Assistant.EstimateMacros(r.Context(), assistant.Meals{
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
		Snacks:    req.Snacks,
	})
	writeSuccess(w, macros, http.StatusOK)
}
