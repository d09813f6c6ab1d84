package service

import (
	"context"
	"strconv"

	"womenhub/internal/cache"
	"womenhub/internal/events"
	"womenhub/internal/models"
	"womenhub/internal/repository"
)

type CourseService interface {
	List(ctx context.Context, category string) []models.Course
	Add(ctx context.Context, course models.NewCourse) (int64, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	loader     *cache.Loader
	base
}

func NewCourseService(courseRepo repository.CourseRepository, loader *cache.Loader, b base) CourseService {
	return &courseService{courseRepo: courseRepo, loader: loader, base: b}
}

func coursesKey(category string) string {
	return "courses:" + category
}

func (s *courseService) List(ctx context.Context, category string) []models.Course {
	courses, err := cache.Load(ctx, s.loader, coursesKey(category), func(ctx context.Context) ([]models.Course, error) {
		return s.courseRepo.List(ctx, category)
	})
	return emptyOnError(s.base, "list_courses", courses, err)
}

func (s *courseService) Add(ctx context.Context, course models.NewCourse) (int64, error) {
	if course.Price == 0 {
		course.IsFree = true
	}

	id, err := s.courseRepo.Insert(ctx, course)
	if err != nil {
		return 0, s.writeFailed("add_course", "the course", err)
	}

	s.loader.Invalidate(ctx, coursesKey(""), coursesKey(course.Category))
	s.publish(ctx, events.New(events.CourseAdded, strconv.FormatInt(id, 10), map[string]any{
		"id":       id,
		"title":    course.Title,
		"category": course.Category,
	}))
	return id, nil
}
