package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"womenhub/internal/cache"
	"womenhub/internal/events"
	"womenhub/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user models.NewUser) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Insert(ctx context.Context, job models.NewJob) (int64, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) ListActive(ctx context.Context, limit int) ([]models.Job, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Insert(ctx context.Context, course models.NewCourse) (int64, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context, category string) ([]models.Course, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Insert(ctx context.Context, story models.NewStory) (int64, error) {
	args := m.Called(ctx, story)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoryRepository) ListApproved(ctx context.Context, limit int) ([]models.SuccessStory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SuccessStory), args.Error(1)
}

type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) Insert(ctx context.Context, mentor models.Mentor) (int64, error) {
	args := m.Called(ctx, mentor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMentorRepository) List(ctx context.Context, expertise string) ([]models.Mentor, error) {
	args := m.Called(ctx, expertise)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mentor), args.Error(1)
}

type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) Insert(ctx context.Context, post models.NewPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) List(ctx context.Context, category string, limit int) ([]models.CommunityPost, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

type MockLegalRepository struct {
	mock.Mock
}

func (m *MockLegalRepository) List(ctx context.Context, category string) ([]models.LegalRight, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LegalRight), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, folder string, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, folder, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	return m.Called(ctx, objectName).Error(0)
}

func (m *MockStorage) GetImageURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestBase(t *testing.T) (base, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	return base{events: pub, logger: zap.NewNop()}, pub
}

func newTestLoader(t *testing.T) *cache.Loader {
	t.Helper()
	mem := cache.NewMemory(100, time.Minute)
	t.Cleanup(func() { mem.Close() })
	return cache.NewLoader(mem, time.Minute, zap.NewNop())
}
