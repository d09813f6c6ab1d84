package repository

import (
	"context"

	"womenhub/internal/apperror"
	"womenhub/internal/models"
)

// NewOffline returns repositories that answer every call with
// apperror.ErrUnavailable. They stand in for the real ones when no database is
// configured so the rest of the service degrades instead of refusing to start.
func NewOffline() *Repository {
	return &Repository{
		User:      offlineUsers{},
		Job:       offlineJobs{},
		Course:    offlineCourses{},
		Story:     offlineStories{},
		Mentor:    offlineMentors{},
		Community: offlineCommunity{},
		Legal:     offlineLegal{},
		Tables:    offlineTables{},
	}
}

type offlineUsers struct{}

func (offlineUsers) Insert(context.Context, models.NewUser) (int64, error) {
	return 0, apperror.ErrUnavailable
}

type offlineJobs struct{}

func (offlineJobs) Insert(context.Context, models.NewJob) (int64, error) {
	return 0, apperror.ErrUnavailable
}

func (offlineJobs) ListActive(context.Context, int) ([]models.Job, error) {
	return nil, apperror.ErrUnavailable
}

func (offlineJobs) Count(context.Context) (int, error) {
	return 0, apperror.ErrUnavailable
}

type offlineCourses struct{}

func (offlineCourses) Insert(context.Context, models.NewCourse) (int64, error) {
	return 0, apperror.ErrUnavailable
}

func (offlineCourses) List(context.Context, string) ([]models.Course, error) {
	return nil, apperror.ErrUnavailable
}

type offlineStories struct{}

func (offlineStories) Insert(context.Context, models.NewStory) (int64, error) {
	return 0, apperror.ErrUnavailable
}

func (offlineStories) ListApproved(context.Context, int) ([]models.SuccessStory, error) {
	return nil, apperror.ErrUnavailable
}

type offlineMentors struct{}

func (offlineMentors) Insert(context.Context, models.Mentor) (int64, error) {
	return 0, apperror.ErrUnavailable
}

func (offlineMentors) List(context.Context, string) ([]models.Mentor, error) {
	return nil, apperror.ErrUnavailable
}

type offlineCommunity struct{}

func (offlineCommunity) Insert(context.Context, models.NewPost) (int64, error) {
	return 0, apperror.ErrUnavailable
}

func (offlineCommunity) List(context.Context, string, int) ([]models.CommunityPost, error) {
	return nil, apperror.ErrUnavailable
}

type offlineLegal struct{}

func (offlineLegal) List(context.Context, string) ([]models.LegalRight, error) {
	return nil, apperror.ErrUnavailable
}

type offlineTables struct{}

func (offlineTables) ListTables(context.Context) ([]string, error) {
	return nil, apperror.ErrUnavailable
}

func (offlineTables) InitSchema(context.Context) ([]models.TableStatus, error) {
	return nil, apperror.ErrUnavailable
}

func (offlineTables) Ping(context.Context) error {
	return apperror.ErrUnavailable
}
