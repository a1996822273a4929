package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavedJobOwnerJobIndex backs the (owner, job) uniqueness invariant. The
// service layer pre-checks for duplicates, but this index is the
// authoritative guard under concurrent saves.
const SavedJobOwnerJobIndex = "uq_saved_jobs_owner_job"

// SavedJob is a job listing bookmarked by a user. The job payload is minted
// by an external listing source; JobID is its identifier, and the remaining
// fields are a denormalized snapshot taken at save time. Records are never
// updated in place.
type SavedJob struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerEmail string          `json:"owner_email" gorm:"size:255;not null;uniqueIndex:uq_saved_jobs_owner_job"`
	JobID      string          `json:"job_id" gorm:"size:255;not null;uniqueIndex:uq_saved_jobs_owner_job"`
	Title      string          `json:"title" gorm:"size:255"`
	Company    string          `json:"company" gorm:"size:255"`
	Location   string          `json:"location" gorm:"size:255"`
	URL        string          `json:"url" gorm:"size:2048"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:decimal(20,2);default:0"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
