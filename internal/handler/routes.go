package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every route. assistantMW wraps only the /api/assistant
// routes.
func NewRouter(h *Handlers, assistantMW ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/contact", h.Contact).Methods(http.MethodPost)

	api.HandleFunc("/jobs", h.ListJobs).Methods(http.MethodGet)
	api.HandleFunc("/jobs", h.PostJob).Methods(http.MethodPost)

	api.HandleFunc("/courses", h.ListCourses).Methods(http.MethodGet)
	api.HandleFunc("/courses", h.AddCourse).Methods(http.MethodPost)

	api.HandleFunc("/stories", h.ListStories).Methods(http.MethodGet)
	api.HandleFunc("/stories", h.SubmitStory).Methods(http.MethodPost)
	api.HandleFunc("/stories/image", h.UploadStoryImage).Methods(http.MethodPost)

	api.HandleFunc("/mentors", h.ListMentors).Methods(http.MethodGet)

	api.HandleFunc("/community/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/community/posts", h.CreatePost).Methods(http.MethodPost)

	api.HandleFunc("/legal-rights", h.ListLegalRights).Methods(http.MethodGet)

	api.HandleFunc("/catalog", h.GetCatalog).Methods(http.MethodGet)
	api.HandleFunc("/safety/emergency-numbers", h.EmergencyNumbers).Methods(http.MethodGet)

	ai := api.PathPrefix("/assistant").Subrouter()
	ai.Use(assistantMW...)
	ai.HandleFunc("/chat", h.Chat).Methods(http.MethodPost)
	ai.HandleFunc("/jobs", h.RecommendJobs).Methods(http.MethodPost)
	ai.HandleFunc("/courses", h.RecommendCourses).Methods(http.MethodPost)
	ai.HandleFunc("/macros", h.EstimateMacros).Methods(http.MethodPost)

	return r
}
