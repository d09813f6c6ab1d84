package repository

import (
	"context"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

type UserRepository interface {
	// Insert returns 0 and no error when the email is already registered.
	Insert(ctx context.Context, user models.NewUser) (int64, error)
}

type JobRepository interface {
	Insert(ctx context.Context, job models.NewJob) (int64, error)
	ListActive(ctx context.Context, limit int) ([]models.Job, error)
	Count(ctx context.Context) (int, error)
}

type CourseRepository interface {
	Insert(ctx context.Context, course models.NewCourse) (int64, error)
	List(ctx context.Context, category string) ([]models.Course, error)
}

type StoryRepository interface {
	Insert(ctx context.Context, story models.NewStory) (int64, error)
	ListApproved(ctx context.Context, limit int) ([]models.SuccessStory, error)
}

type MentorRepository interface {
	Insert(ctx context.Context, mentor models.Mentor) (int64, error)
	List(ctx context.Context, expertise string) ([]models.Mentor, error)
}

type CommunityRepository interface {
	Insert(ctx context.Context, post models.NewPost) (int64, error)
	List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error)
}

type LegalRepository interface {
	List(ctx context.Context, category string) ([]models.LegalRight, error)
}

type TablesRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	InitSchema(ctx context.Context) ([]models.TableStatus, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	User      UserRepository
	Job       JobRepository
	Course    CourseRepository
	Story     StoryRepository
	Mentor    MentorRepository
	Community CommunityRepository
	Legal     LegalRepository
	Tables    TablesRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User:      NewUserRepository(db),
		Job:       NewJobRepository(db),
		Course:    NewCourseRepository(db),
		Story:     NewStoryRepository(db),
		Mentor:    NewMentorRepository(db),
		Community: NewCommunityRepository(db),
		Legal:     NewLegalRepository(db),
		Tables:    NewTablesRepository(db),
	}
}

// nullable maps an empty optional column to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
