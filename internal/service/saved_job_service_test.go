package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobdock/internal/errors"
	"jobdock/internal/model"
)

// MockSavedJobRepository is a mock implementation of SavedJobRepository.
type MockSavedJobRepository struct {
	mock.Mock
}

func (m *MockSavedJobRepository) Create(ctx context.Context, job *model.SavedJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockSavedJobRepository) FindByOwnerAndJobID(ctx context.Context, ownerEmail, jobID string) (*model.SavedJob, error) {
	args := m.Called(ctx, ownerEmail, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedJob), args.Error(1)
}

func (m *MockSavedJobRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.SavedJob, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedJob), args.Error(1)
}

func (m *MockSavedJobRepository) DeleteByOwnerAndJobID(ctx context.Context, ownerEmail, jobID string) (int64, error) {
	args := m.Called(ctx, ownerEmail, jobID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSavedJobService_Save(t *testing.T) {
	job := JobInput{
		ID:     "job1",
		Title:  "X",
		Salary: decimal.NewFromInt(70000),
	}

	tests := []struct {
		name      string
		email     string
		job       JobInput
		setupMock func(*MockSavedJobRepository)
		wantErr   error
	}{
		{
			name:  "first save succeeds",
			email: "al@x.com",
			job:   job,
			setupMock: func(m *MockSavedJobRepository) {
				m.On("FindByOwnerAndJobID", mock.Anything, "al@x.com", "job1").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.SavedJob")).Return(nil)
			},
		},
		{
			name:  "repeat save is a conflict",
			email: "al@x.com",
			job:   job,
			setupMock: func(m *MockSavedJobRepository) {
				m.On("FindByOwnerAndJobID", mock.Anything, "al@x.com", "job1").
					Return(&model.SavedJob{OwnerEmail: "al@x.com", JobID: "job1"}, nil)
			},
			wantErr: apperrors.ErrAlreadySaved,
		},
		{
			name:  "losing the insert race is the same conflict",
			email: "al@x.com",
			job:   job,
			setupMock: func(m *MockSavedJobRepository) {
				m.On("FindByOwnerAndJobID", mock.Anything, "al@x.com", "job1").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.SavedJob")).Return(apperrors.ErrAlreadySaved)
			},
			wantErr: apperrors.ErrAlreadySaved,
		},
		{
			name:      "missing email",
			email:     "",
			job:       job,
			setupMock: func(m *MockSavedJobRepository) {},
			wantErr:   apperrors.ErrMissingField,
		},
		{
			name:      "missing job id",
			email:     "al@x.com",
			job:       JobInput{Title: "X"},
			setupMock: func(m *MockSavedJobRepository) {},
			wantErr:   apperrors.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSavedJobRepository)
			tt.setupMock(mockRepo)

			svc := NewSavedJobService(mockRepo)
			saved, err := svc.Save(context.Background(), tt.email, tt.job)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, saved)
				assert.Equal(t, tt.email, saved.OwnerEmail)
				assert.Equal(t, tt.job.ID, saved.JobID)
				assert.Equal(t, tt.job.Title, saved.Title)
				assert.True(t, tt.job.Salary.Equal(saved.Salary))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSavedJobService_Unsave(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		jobID     string
		setupMock func(*MockSavedJobRepository)
		wantErr   error
	}{
		{
			name:  "unsave removes the record",
			email: "al@x.com",
			jobID: "job1",
			setupMock: func(m *MockSavedJobRepository) {
				m.On("DeleteByOwnerAndJobID", mock.Anything, "al@x.com", "job1").Return(int64(1), nil)
			},
		},
		{
			name:  "unsave of a never-saved job is not-found",
			email: "al@x.com",
			jobID: "job1",
			setupMock: func(m *MockSavedJobRepository) {
				m.On("DeleteByOwnerAndJobID", mock.Anything, "al@x.com", "job1").Return(int64(0), nil)
			},
			wantErr: apperrors.ErrSavedJobNotFound,
		},
		{
			name:      "missing email",
			email:     "",
			jobID:     "job1",
			setupMock: func(m *MockSavedJobRepository) {},
			wantErr:   apperrors.ErrMissingField,
		},
		{
			name:      "missing job id",
			email:     "al@x.com",
			jobID:     "",
			setupMock: func(m *MockSavedJobRepository) {},
			wantErr:   apperrors.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSavedJobRepository)
			tt.setupMock(mockRepo)

			svc := NewSavedJobService(mockRepo)
			err := svc.Unsave(context.Background(), tt.email, tt.jobID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSavedJobService_List(t *testing.T) {
	t.Run("returns the owner's saved jobs", func(t *testing.T) {
		mockRepo := new(MockSavedJobRepository)
		mockRepo.On("ListByOwner", mock.Anything, "al@x.com").Return([]model.SavedJob{
			{OwnerEmail: "al@x.com", JobID: "job1"},
			{OwnerEmail: "al@x.com", JobID: "job2"},
		}, nil)

		svc := NewSavedJobService(mockRepo)
		jobs, err := svc.List(context.Background(), "al@x.com")

		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no saved jobs is an empty slice, not an error", func(t *testing.T) {
		mockRepo := new(MockSavedJobRepository)
		mockRepo.On("ListByOwner", mock.Anything, "empty@x.com").Return([]model.SavedJob{}, nil)

		svc := NewSavedJobService(mockRepo)
		jobs, err := svc.List(context.Background(), "empty@x.com")

		assert.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := NewSavedJobService(new(MockSavedJobRepository))
		jobs, err := svc.List(context.Background(), "")

		assert.ErrorIs(t, err, apperrors.ErrMissingField)
		assert.Nil(t, jobs)
	})
}
