package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "jobdock/internal/errors"
	"jobdock/internal/model"
)

// SavedJobRepository defines saved-job persistence operations.
type SavedJobRepository interface {
	Create(ctx context.Context, job *model.SavedJob) error
	FindByOwnerAndJobID(ctx context.Context, ownerEmail, jobID string) (*model.SavedJob, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.SavedJob, error)
	DeleteByOwnerAndJobID(ctx context.Context, ownerEmail, jobID string) (int64, error)
}

type savedJobRepository struct {
	db *gorm.DB
}

// NewSavedJobRepository builds a GORM-backed repository.
func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

// Create inserts the record. A concurrent duplicate save loses the race at
// the (owner_email, job_id) unique index and surfaces as ErrAlreadySaved,
// the same outcome as the service-level pre-check.
func (r *savedJobRepository) Create(ctx context.Context, job *model.SavedJob) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		if isDuplicateEntry(err) {
			return apperrors.ErrAlreadySaved
		}
		return translateError(err, nil)
	}
	return nil
}

func (r *savedJobRepository) FindByOwnerAndJobID(ctx context.Context, ownerEmail, jobID string) (*model.SavedJob, error) {
	var job model.SavedJob
	if err := r.db.WithContext(ctx).
		Where("owner_email = ? AND job_id = ?", ownerEmail, jobID).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *savedJobRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.SavedJob, error) {
	jobs := make([]model.SavedJob, 0)
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// DeleteByOwnerAndJobID removes the unique matching record and reports how
// many rows matched. Zero rows means there was nothing to unsave.
func (r *savedJobRepository) DeleteByOwnerAndJobID(ctx context.Context, ownerEmail, jobID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("owner_email = ? AND job_id = ?", ownerEmail, jobID).
		Delete(&model.SavedJob{})
	return res.RowsAffected, res.Error
}
