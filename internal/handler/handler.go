package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"womenhub/internal/assistant"
	"womenhub/internal/catalog"
	"womenhub/internal/config"
	"womenhub/internal/service"
	"womenhub/internal/validation"
)

type Handlers struct {
	UserService      service.UserService
	ContactService   service.ContactService
	JobService       service.JobService
	CourseService    service.CourseService
	StoryService     service.StoryService
	MentorService    service.MentorService
	CommunityService service.CommunityService
	LegalService     service.LegalService
	TablesService    service.TablesService
	Assistant        *assistant.Assistant
	Catalog          *catalog.Catalog
	Cfg              *config.Config
	Validate         *validator.Validate
	Logger           *zap.Logger
	Now              func() time.Time
}

func NewHandlers(service *service.Service, assistant *assistant.Assistant, catalog *catalog.Catalog, config *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		UserService:      service.User,
		ContactService:   service.Contact,
		JobService:       service.Job,
		CourseService:    service.Course,
		StoryService:     service.Story,
		MentorService:    service.Mentor,
		CommunityService: service.Community,
		LegalService:     service.Legal,
		TablesService:    service.Tables,
		Assistant:        assistant,
		Catalog:          catalog,
		Cfg:              config,
		Validate:         validation.New(),
		Logger:           logger.Named("handler"),
		Now:              time.Now,
	}
}

// bind decodes the JSON body into form and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (h *Handlers) bind(w http.ResponseWriter, r *http.Request, form any) bool {
	if err := decodeJSON(r, form); err != nil {
		writeAppError(w, err)
		return false
	}
	if err := validation.Struct(h.Validate, form); err != nil {
		writeAppError(w, err)
		return false
	}
	return true
}
