package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"womenhub/internal/apperror"
	"womenhub/internal/events"
	"womenhub/internal/models"
)

func TestMentorService_FiltersCachedDirectory(t *testing.T) {
	repo := new(MockMentorRepository)
	repo.On("List", mock.Anything, "").Return([]models.Mentor{
		{ID: 1, Name: "Kavita Reddy", Expertise: "Data Science"},
		{ID: 2, Name: "Meera Iyer", Expertise: "Product Management"},
	}, nil).Once()
	b, _ := newTestBase(t)

	svc := NewMentorService(repo, newTestLoader(t), b)
	ctx := context.Background()

	first := svc.List(ctx, " Data ")
	second := svc.List(ctx, "data science")
	all := svc.List(ctx, "")
	none := svc.List(ctx, "Law")

	require.Len(t, first, 1)
	assert.Equal(t, "Kavita Reddy", first[0].Name)
	assert.Equal(t, first, second)
	assert.Len(t, all, 2)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	repo.AssertExpectations(t)
}

func TestInvalidateSeeded(t *testing.T) {
	jobs := new(MockJobRepository)
	jobs.On("ListActive", mock.Anything, maxJobLimit).Return([]models.Job{}, nil).Twice()
	mentors := new(MockMentorRepository)
	mentors.On("List", mock.Anything, "").Return([]models.Mentor{}, nil).Twice()
	b, _ := newTestBase(t)
	loader := newTestLoader(t)
	ctx := context.Background()

	jobSvc := NewJobService(jobs, loader, b)
	mentorSvc := NewMentorService(mentors, loader, b)
	jobSvc.List(ctx, 0)
	mentorSvc.List(ctx, "")

	InvalidateSeeded(ctx, loader)
	jobSvc.List(ctx, 0)
	mentorSvc.List(ctx, "")

	jobs.AssertExpectations(t)
	mentors.AssertExpectations(t)
}

func TestMentorService_DegradesToEmpty(t *testing.T) {
	repo := new(MockMentorRepository)
	repo.On("List", mock.Anything, "").Return(nil, apperror.ErrUnavailable)
	b, _ := newTestBase(t)

	got := NewMentorService(repo, newTestLoader(t), b).List(context.Background(), "")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCommunityService_List(t *testing.T) {
	repo := new(MockCommunityRepository)
	repo.On("List", mock.Anything, "Career Advice", DefaultPostLimit).Return([]models.CommunityPost{{ID: 3, AuthorName: "Anonymous"}}, nil)
	repo.On("List", mock.Anything, "", 5).Return(nil, errors.New("connection reset"))
	b, _ := newTestBase(t)

	svc := NewCommunityService(repo, b)

	assert.Len(t, svc.List(context.Background(), "Career Advice", 0), 1)

	failed := svc.List(context.Background(), "", 5)
	assert.NotNil(t, failed)
	assert.Empty(t, failed)
}

func TestCommunityService_ListCapsLimit(t *testing.T) {
	repo := new(MockCommunityRepository)
	repo.On("List", mock.Anything, "", maxPostLimit).Return([]models.CommunityPost{}, nil).Once()
	b, _ := newTestBase(t)

	NewCommunityService(repo, b).List(context.Background(), "", 100000000)

	repo.AssertExpectations(t)
}

func TestCommunityService_Create(t *testing.T) {
	repo := new(MockCommunityRepository)
	post := models.NewPost{Title: "First job tips", Content: "Ask questions", Category: "Career Advice"}
	repo.On("Insert", mock.Anything, post).Return(int64(11), nil).Once()
	repo.On("Insert", mock.Anything, post).Return(int64(0), errors.New("disk full")).Once()
	b, pub := newTestBase(t)

	svc := NewCommunityService(repo, b)

	id, err := svc.Create(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.PostCreated, pub.events[0].Type)
	assert.Equal(t, "11", pub.events[0].Key)

	_, err = svc.Create(context.Background(), post)
	require.ErrorIs(t, err, apperror.ErrUnavailable)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Could not save your post. Please try again.", appErr.Message)
	assert.Len(t, pub.events, 1)
}

func TestCommunityService_CreateSurvivesPublishFailure(t *testing.T) {
	repo := new(MockCommunityRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(int64(2), nil)
	b, pub := newTestBase(t)
	pub.err = errors.New("broker down")

	id, err := NewCommunityService(repo, b).Create(context.Background(), models.NewPost{Title: "t", Content: "c"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestLegalService_List(t *testing.T) {
	repo := new(MockLegalRepository)
	repo.On("List", mock.Anything, "Equal Pay").Return([]models.LegalRight{{ID: 1, Category: "Equal Pay", Title: "Equal Remuneration"}}, nil)
	repo.On("List", mock.Anything, "").Return(nil, apperror.ErrUnavailable)
	b, _ := newTestBase(t)

	svc := NewLegalService(repo, b)

	assert.Len(t, svc.List(context.Background(), "Equal Pay"), 1)
	empty := svc.List(context.Background(), "")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
