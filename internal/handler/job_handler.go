package handlers

import (
	"net/http"

	"womenhub/internal/models"
	"womenhub/internal/service"
)

type JobRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Company      string `json:"company" validate:"required,max=200"`
	Location     string `json:"location" validate:"max=100"`
	JobType      string `json:"jobType" validate:"max=50"`
	SalaryRange  string `json:"salaryRange" validate:"max=100"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	ApplyLink    string `json:"applyLink" validate:"omitempty,httpurl"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.JobService.List(r.Context(), queryInt(r, "limit", service.DefaultJobLimit))
	writeSuccess(w, jobs, http.StatusOK)
}

func (h *Handlers) PostJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if !h.bind(w, r, &req) {
		return
	}

	id, err := h.JobService.Post(r.Context(), models.NewJob{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Description:  req.Description,
		Requirements: req.Requirements,
		ApplyLink:    req.ApplyLink,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, CreatedResponse{ID: id}, http.StatusCreated)
}

type CourseRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Category    string  `json:"category" validate:"max=100"`
	Level       string  `json:"level" validate:"max=50"`
	Duration    string  `json:"duration" validate:"max=50"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor" validate:"max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsFree      *bool   `json:"isFree"`
}

func (h *Handlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.CourseService.List(r.Context(), r.URL.Query().Get("category")), http.StatusOK)
}

func (h *Handlers) AddCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if !h.bind(w, r, &req) {
		return
	}

	isFree := req.Price == 0
	if req.IsFree != nil {
		isFree = *req.IsFree
	}

	id, err := h.CourseService.Add(r.Context(), models.NewCourse{
		Title:       req.Title,
		Category:    req.Category,
		Level:       req.Level,
		Duration:    req.Duration,
		Description: req.Description,
		Instructor:  req.Instructor,
		Price:       req.Price,
		IsFree:      isFree,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeSuccess(w, CreatedResponse{ID: id}, http.StatusCreated)
}

func (h *Handlers) ListMentors(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.MentorService.List(r.Context(), r.URL.Query().Get("expertise")), http.StatusOK)
}

func (h *Handlers) ListLegalRights(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.LegalService.List(r.Context(), r.URL.Query().Get("category")), http.StatusOK)
}
