package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"womenhub/internal/models"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user models.NewUser) (int64, bool, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg models.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) List(ctx context.Context, limit int) []models.Job {
	return m.Called(ctx, limit).Get(0).([]models.Job)
}

func (m *MockJobService) Post(ctx context.Context, job models.NewJob) (int64, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(int64), args.Error(1)
}

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) List(ctx context.Context, category string) []models.Course {
	return m.Called(ctx, category).Get(0).([]models.Course)
}

func (m *MockCourseService) Add(ctx context.Context, course models.NewCourse) (int64, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(int64), args.Error(1)
}

type MockStoryService struct {
	mock.Mock
}

func (m *MockStoryService) List(ctx context.Context, limit int) []models.SuccessStory {
	return m.Called(ctx, limit).Get(0).([]models.SuccessStory)
}

func (m *MockStoryService) Submit(ctx context.Context, story models.NewStory) (int64, error) {
	args := m.Called(ctx, story)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoryService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockMentorService struct {
	mock.Mock
}

func (m *MockMentorService) List(ctx context.Context, expertise string) []models.Mentor {
	return m.Called(ctx, expertise).Get(0).([]models.Mentor)
}

type MockCommunityService struct {
	mock.Mock
}

func (m *MockCommunityService) List(ctx context.Context, category string, limit int) []models.CommunityPost {
	return m.Called(ctx, category, limit).Get(0).([]models.CommunityPost)
}

func (m *MockCommunityService) Create(ctx context.Context, post models.NewPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

type MockLegalService struct {
	mock.Mock
}

func (m *MockLegalService) List(ctx context.Context, category string) []models.LegalRight {
	return m.Called(ctx, category).Get(0).([]models.LegalRight)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) Summary(ctx context.Context) (models.TablesReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.TablesReport), args.Error(1)
}

func (m *MockTablesService) Init(ctx context.Context) ([]models.TableStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TableStatus), args.Error(1)
}

func (m *MockTablesService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
