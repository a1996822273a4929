package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "jobdock/internal/errors"
	"jobdock/internal/model"
	"jobdock/internal/repository"
)

// JobInput is the externally-sourced job payload a user asks to save. ID is
// the listing source's identifier and is the only mandatory field.
type JobInput struct {
	ID       string
	Title    string
	Company  string
	Location string
	URL      string
	Salary   decimal.Decimal
}

// SavedJobService owns the per-owner saved-job set.
type SavedJobService interface {
	List(ctx context.Context, ownerEmail string) ([]model.SavedJob, error)
	Save(ctx context.Context, ownerEmail string, job JobInput) (*model.SavedJob, error)
	Unsave(ctx context.Context, ownerEmail, jobID string) error
}

type savedJobService struct {
	savedJobs repository.SavedJobRepository
}

// NewSavedJobService creates a new saved-job service.
func NewSavedJobService(savedJobs repository.SavedJobRepository) SavedJobService {
	return &savedJobService{savedJobs: savedJobs}
}

// List returns every saved job for the owner, newest first. No saved jobs is
// an empty slice, not an error.
func (s *savedJobService) List(ctx context.Context, ownerEmail string) ([]model.SavedJob, error) {
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: email", apperrors.ErrMissingField)
	}
	return s.savedJobs.ListByOwner(ctx, ownerEmail)
}

// Save bookmarks a job for the owner. The pre-check gives the common
// duplicate a friendly answer without a failed insert; the unique index on
// (owner_email, job_id) is the authoritative guard, and losing that race is
// reported exactly like the pre-check hit.
func (s *savedJobService) Save(ctx context.Context, ownerEmail string, job JobInput) (*model.SavedJob, error) {
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: email", apperrors.ErrMissingField)
	}
	if job.ID == "" {
		return nil, fmt.Errorf("%w: job.id", apperrors.ErrMissingField)
	}

	if _, err := s.savedJobs.FindByOwnerAndJobID(ctx, ownerEmail, job.ID); err == nil {
		return nil, apperrors.ErrAlreadySaved
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check saved job: %w", err)
	}

	saved := &model.SavedJob{
		OwnerEmail: ownerEmail,
		JobID:      job.ID,
		Title:      job.Title,
		Company:    job.Company,
		Location:   job.Location,
		URL:        job.URL,
		Salary:     job.Salary,
	}

	if err := s.savedJobs.Create(ctx, saved); err != nil {
		return nil, err
	}

	return saved, nil
}

// Unsave removes the owner's bookmark for jobID. The delete is a single
// atomic find-and-remove; zero matched rows means there was nothing saved.
func (s *savedJobService) Unsave(ctx context.Context, ownerEmail, jobID string) error {
	if ownerEmail == "" {
		return fmt.Errorf("%w: email", apperrors.ErrMissingField)
	}
	if jobID == "" {
		return fmt.Errorf("%w: jobId", apperrors.ErrMissingField)
	}

	affected, err := s.savedJobs.DeleteByOwnerAndJobID(ctx, ownerEmail, jobID)
	if err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSavedJobNotFound
	}
	return nil
}
