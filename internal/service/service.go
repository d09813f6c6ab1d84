package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"womenhub/internal/apperror"
	"womenhub/internal/cache"
	"womenhub/internal/config"
	"womenhub/internal/events"
	"womenhub/internal/repository"
	"womenhub/internal/storage"
)

type Service struct {
	User      UserService
	Contact   ContactService
	Job       JobService
	Course    CourseService
	Story     StoryService
	Mentor    MentorService
	Community CommunityService
	Legal     LegalService
	Tables    TablesService
}

// NewService wires the feature services. store may be nil when object storage
// is not configured.
func NewService(rep *repository.Repository, cfg *config.Config, loader *cache.Loader, publisher events.Publisher, store storage.Storage, logger *zap.Logger) *Service {
	b := base{events: publisher, logger: logger.Named("service")}

	return &Service{
		User:      NewUserService(rep.User, b),
		Contact:   NewContactService(b),
		Job:       NewJobService(rep.Job, loader, b),
		Course:    NewCourseService(rep.Course, loader, b),
		Story:     NewStoryService(rep.Story, loader, store, cfg.MaxUploadSize, b),
		Mentor:    NewMentorService(rep.Mentor, loader, b),
		Community: NewCommunityService(rep.Community, b),
		Legal:     NewLegalService(rep.Legal, b),
		Tables:    NewTablesService(rep.Tables),
	}
}

// base carries what every feature service shares and implements the degrade
// rules: failed reads become empty lists, failed writes become a short
// user-facing error, event failures are only logged.
type base struct {
	events events.Publisher
	logger *zap.Logger
}

func emptyOnError[T any](b base, op string, items []T, err error) []T {
	if err != nil {
		b.logger.Warn("read degraded to empty result", zap.String("op", op), zap.Error(err))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func (b base) writeFailed(op, what string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	b.logger.Error("write failed", zap.String("op", op), zap.Error(err))
	if errors.Is(err, apperror.ErrUnavailable) {
		return apperror.Unavailable("Saving "+what+" is temporarily unavailable. Please try again later.", err)
	}
	return apperror.Unavailable("Could not save "+what+". Please try again.", err)
}

func (b base) publish(ctx context.Context, evt events.Event) {
	if err := b.events.Publish(ctx, evt); err != nil {
		b.logger.Warn("publish event failed", zap.String("type", evt.Type), zap.String("key", evt.Key), zap.Error(err))
	}
}
