package service

import (
	"context"
	"strings"

	"womenhub/internal/cache"
	"womenhub/internal/models"
	"womenhub/internal/repository"
)

const mentorsKey = "mentors"

type MentorService interface {
	List(ctx context.Context, expertise string) []models.Mentor
}

type mentorService struct {
	mentorRepo repository.MentorRepository
	loader     *cache.Loader
	base
}

func NewMentorService(mentorRepo repository.MentorRepository, loader *cache.Loader, b base) MentorService {
	return &mentorService{mentorRepo: mentorRepo, loader: loader, base: b}
}

// List returns mentors whose expertise contains the given text, ignoring case.
// The full directory is cached once and filtered per call.
func (s *mentorService) List(ctx context.Context, expertise string) []models.Mentor {
	mentors, err := cache.Load(ctx, s.loader, mentorsKey, func(ctx context.Context) ([]models.Mentor, error) {
		return s.mentorRepo.List(ctx, "")
	})
	mentors = emptyOnError(s.base, "list_mentors", mentors, err)

	needle := strings.ToLower(strings.TrimSpace(expertise))
	if needle == "" {
		return mentors
	}

	matched := []models.Mentor{}
	for _, m := range mentors {
		if strings.Contains(strings.ToLower(m.Expertise), needle) {
			matched = append(matched, m)
		}
	}
	return matched
}

// InvalidateSeeded drops the cached lists that bulk loads such as the sample
// data seeder write behind the services' backs.
func InvalidateSeeded(ctx context.Context, loader *cache.Loader) {
	loader.Invalidate(ctx, jobsKey, mentorsKey)
}
