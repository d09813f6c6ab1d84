package service

import (
	"context"
	"strconv"

	"womenhub/internal/cache"
	"womenhub/internal/events"
	"womenhub/internal/models"
	"womenhub/internal/repository"
)

const (
	DefaultJobLimit = 50
	maxJobLimit     = 200

	jobsKey = "jobs"
)

type JobService interface {
	List(ctx context.Context, limit int) []models.Job
	Post(ctx context.Context, job models.NewJob) (int64, error)
}

type jobService struct {
	jobRepo repository.JobRepository
	loader  *cache.Loader
	base
}

func NewJobService(jobRepo repository.JobRepository, loader *cache.Loader, b base) JobService {
	return &jobService{jobRepo: jobRepo, loader: loader, base: b}
}

// List returns up to limit active jobs, newest first. The cached entry always
// holds the largest page and is cut down per call.
func (s *jobService) List(ctx context.Context, limit int) []models.Job {
	if limit <= 0 {
		limit = DefaultJobLimit
	}
	limit = min(limit, maxJobLimit)

	jobs, err := cache.Load(ctx, s.loader, jobsKey, func(ctx context.Context) ([]models.Job, error) {
		return s.jobRepo.ListActive(ctx, maxJobLimit)
	})
	jobs = emptyOnError(s.base, "list_jobs", jobs, err)

	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs
}

func (s *jobService) Post(ctx context.Context, job models.NewJob) (int64, error) {
	id, err := s.jobRepo.Insert(ctx, job)
	if err != nil {
		return 0, s.writeFailed("post_job", "the job", err)
	}

	s.loader.Invalidate(ctx, jobsKey)
	s.publish(ctx, events.New(events.JobPosted, strconv.FormatInt(id, 10), map[string]any{
		"id":      id,
		"title":   job.Title,
		"company": job.Company,
	}))
	return id, nil
}
