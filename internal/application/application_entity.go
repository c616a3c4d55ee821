package application

import (
	"time"

	"job-portal/internal/job"
	"job-portal/internal/profile"

	"github.com/google/uuid"
)

const (
	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"

	MaxCoverLetterLength = 1000
)

type Application struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Employee    *profile.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	JobID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Job         *job.Job          `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	CoverLetter string            `gorm:"type:text;not null;default:''"`
	SubmittedAt time.Time         `gorm:"not null"`
	Status      string            `gorm:"type:varchar(20);not null;default:'submitted';index"`
	IsActive    bool              `gorm:"not null;default:true"`
	UpdatedAt   time.Time

	// filled by joined lookups only
	EmployeeUserID     uuid.UUID `gorm:"->;-:migration"`
	JobRecruiterUserID uuid.UUID `gorm:"->;-:migration"`
}

func (Application) TableName() string {
	return "applications"
}

// JobTarget is the slice of a job an application needs at submission time.
type JobTarget struct {
	ID             uuid.UUID
	Title          string
	IsActive       bool
	RecruiterEmail string
}
