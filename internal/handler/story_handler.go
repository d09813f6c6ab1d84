package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"womenhub/internal/format"
	"womenhub/internal/models"
	"womenhub/internal/service"
)

type StoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Title    string `json:"title" validate:"required,max=200"`
	Story    string `json:"story" validate:"required"`
	Category string `json:"category" validate:"max=100"`
	ImageURL string `json:"imageUrl" validate:"omitempty,httpurl"`
}

func (h *Handlers) ListStories(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.StoryService.List(r.Context(), queryInt(r, "limit", service.DefaultStoryLimit)), http.StatusOK)
}

func (h *Handlers) SubmitStory(w http.ResponseWriter, r *http.Request) {
	var req StoryRequest
	if !h.bind(w, r, &req) {
		return
	}

	id, err := h.StoryService.Submit(r.Context(), models.NewStory{
		Name:     req.Name,
		Title:    req.Title,
		Story:    req.Story,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, CreatedResponse{ID: id}, http.StatusCreated)
}

type UploadResponse struct {
	URL string `json:"url"`
}

// UploadStoryImage accepts a multipart form with an "image" file part.
func (h *Handlers) UploadStoryImage(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1<<20)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, ErrorResponse{Error: format.ImageTooLarge(maxSize), Field: "image"}, http.StatusRequestEntityTooLarge)
			return
		}
		writeJSON(w, ErrorResponse{Error: "Expected a multipart form", Field: "image"}, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, ErrorResponse{Error: "image file is required", Field: "image"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if h.Catalog != nil && !h.Catalog.Uploads.AllowsImage(filepath.Ext(header.Filename)) {
		writeJSON(w, ErrorResponse{
			Error: "Only " + strings.Join(h.Catalog.Uploads.ImageTypes, ", ") + " images are allowed",
			Field: "image",
		}, http.StatusBadRequest)
		return
	}

	url, err := h.StoryService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		h.Logger.Info("story image rejected", zap.String("file", header.Filename), zap.Error(err))
		writeAppError(w, err)
		return
	}

	writeSuccess(w, UploadResponse{URL: url}, http.StatusCreated)
}
