package service

import (
	"context"
	"strconv"

	"womenhub/internal/events"
	"womenhub/internal/models"
	"womenhub/internal/repository"
)

const (
	DefaultPostLimit = 50
	maxPostLimit     = 200
)

type CommunityService interface {
	List(ctx context.Context, category string, limit int) []models.CommunityPost
	Create(ctx context.Context, post models.NewPost) (int64, error)
}

type communityService struct {
	communityRepo repository.CommunityRepository
	base
}

func NewCommunityService(communityRepo repository.CommunityRepository, b base) CommunityService {
	return &communityService{communityRepo: communityRepo, base: b}
}

func (s *communityService) List(ctx context.Context, category string, limit int) []models.CommunityPost {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	limit = min(limit, maxPostLimit)

	posts, err := s.communityRepo.List(ctx, category, limit)
	return emptyOnError(s.base, "list_posts", posts, err)
}

func (s *communityService) Create(ctx context.Context, post models.NewPost) (int64, error) {
	id, err := s.communityRepo.Insert(ctx, post)
	if err != nil {
		return 0, s.writeFailed("create_post", "your post", err)
	}

	s.publish(ctx, events.New(events.PostCreated, strconv.FormatInt(id, 10), map[string]any{
		"id":       id,
		"category": post.Category,
	}))
	return id, nil
}

type LegalService interface {
	List(ctx context.Context, category string) []models.LegalRight
}

type legalService struct {
	legalRepo repository.LegalRepository
	base
}

func NewLegalService(legalRepo repository.LegalRepository, b base) LegalService {
	return &legalService{legalRepo: legalRepo, base: b}
}

func (s *legalService) List(ctx context.Context, category string) []models.LegalRight {
	rights, err := s.legalRepo.List(ctx, category)
	return emptyOnError(s.base, "list_legal_rights", rights, err)
}
