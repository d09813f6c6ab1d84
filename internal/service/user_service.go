package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"womenhub/internal/events"
	"womenhub/internal/models"
	"womenhub/internal/repository"
)

type UserService interface {
	// Register stores a user. created is false when the email was already
	// registered; that is not an error.
	Register(ctx context.Context, user models.NewUser) (id int64, created bool, err error)
}

type userService struct {
	userRepo repository.UserRepository
	base
}

func NewUserService(userRepo repository.UserRepository, b base) UserService {
	return &userService{
		userRepo: userRepo,
		base:     b,
	}
}

func (s *userService) Register(ctx context.Context, user models.NewUser) (int64, bool, error) {
	user.Email = strings.TrimSpace(user.Email)

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return 0, false, s.writeFailed("register_user", "your registration", err)
	}

	if id == 0 {
		s.logger.Info("user already registered", zap.String("email", user.Email))
		return 0, false, nil
	}

	s.publish(ctx, events.New(events.UserRegistered, strconv.FormatInt(id, 10), map[string]any{
		"id":       id,
		"name":     user.Name,
		"location": user.Location,
	}))
	return id, true, nil
}

type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) error
}

type contactService struct {
	base
}

func NewContactService(b base) ContactService {
	return &contactService{base: b}
}

// Submit hands the message to the event stream. Nothing is persisted, so the
// only failure is a publish error, which is reported to the caller.
func (s *contactService) Submit(ctx context.Context, msg models.ContactMessage) error {
	evt := events.New(events.ContactReceived, msg.Email, msg)
	if err := s.events.Publish(ctx, evt); err != nil {
		return s.writeFailed("contact", "your message", err)
	}

	s.logger.Info("contact message received", zap.String("subject", msg.Subject))
	return nil
}
