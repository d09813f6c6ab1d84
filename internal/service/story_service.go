package service

import (
	"context"
	"errors"
	"io"
	"strconv"

	"go.uber.org/zap"

	"womenhub/internal/apperror"
	"womenhub/internal/cache"
	"womenhub/internal/events"
	"womenhub/internal/format"
	"womenhub/internal/models"
	"womenhub/internal/repository"
	"womenhub/internal/storage"
)

const (
	DefaultStoryLimit = 20
	maxStoryLimit     = 100

	storiesKey  = "stories"
	storyFolder = "stories"
)

type StoryService interface {
	List(ctx context.Context, limit int) []models.SuccessStory
	Submit(ctx context.Context, story models.NewStory) (int64, error)
	// UploadImage stores a story picture and returns its URL.
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type storyService struct {
	storyRepo repository.StoryRepository
	loader    *cache.Loader
	store     storage.Storage
	maxUpload int64
	base
}

func NewStoryService(storyRepo repository.StoryRepository, loader *cache.Loader, store storage.Storage, maxUpload int64, b base) StoryService {
	return &storyService{storyRepo: storyRepo, loader: loader, store: store, maxUpload: maxUpload, base: b}
}

func (s *storyService) List(ctx context.Context, limit int) []models.SuccessStory {
	if limit <= 0 {
		limit = DefaultStoryLimit
	}
	limit = min(limit, maxStoryLimit)

	stories, err := cache.Load(ctx, s.loader, storiesKey, func(ctx context.Context) ([]models.SuccessStory, error) {
		return s.storyRepo.ListApproved(ctx, maxStoryLimit)
	})
	stories = emptyOnError(s.base, "list_stories", stories, err)

	if len(stories) > limit {
		stories = stories[:limit]
	}
	return stories
}

func (s *storyService) Submit(ctx context.Context, story models.NewStory) (int64, error) {
	id, err := s.storyRepo.Insert(ctx, story)
	if err != nil {
		return 0, s.writeFailed("submit_story", "your story", err)
	}

	s.loader.Invalidate(ctx, storiesKey)
	s.publish(ctx, events.New(events.StorySubmitted, strconv.FormatInt(id, 10), map[string]any{
		"id":       id,
		"title":    story.Title,
		"category": story.Category,
	}))
	return id, nil
}

func (s *storyService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	if s.store == nil {
		return "", apperror.Unavailable("Image uploads are not available right now.", nil)
	}

	objectName, url, err := s.store.UploadImage(ctx, storyFolder, fileName, file, size)
	switch {
	case errors.Is(err, storage.ErrUnsupportedType):
		return "", apperror.ValidationFailed("image", "Only JPG, PNG or GIF images are accepted")
	case errors.Is(err, storage.ErrTooLarge):
		return "", apperror.ValidationFailed("image", format.ImageTooLarge(s.maxUpload))
	case errors.Is(err, storage.ErrEmpty):
		return "", apperror.ValidationFailed("image", "Image file is empty")
	case err != nil:
		return "", s.writeFailed("upload_story_image", "the image", err)
	}

	s.logger.Info("story image uploaded", zap.String("object", objectName))
	return url, nil
}
