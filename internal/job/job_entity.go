package job

import (
	"time"

	"job-portal/internal/profile"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	TypeFullTime   = "full_time"
	TypePartTime   = "part_time"
	TypeContract   = "contract"
	TypeInternship = "internship"
	TypeFreelance  = "freelance"
)

type Job struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecruiterID         uuid.UUID          `gorm:"type:uuid;not null;index"`
	Recruiter           *profile.Recruiter `gorm:"foreignKey:RecruiterID;constraint:OnDelete:CASCADE"`
	Title               string             `gorm:"type:varchar(255);not null"`
	Description         string             `gorm:"type:text;not null"`
	Location            string             `gorm:"type:varchar(255);not null"`
	JobType             string             `gorm:"type:varchar(20);not null;default:'full_time'"`
	Salary              decimal.Decimal    `gorm:"type:numeric(10,2);not null"`
	PostedDate          time.Time          `gorm:"not null"`
	ApplicationDeadline *datatypes.Date
	IsActive            bool `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// RecruiterUserID is filled by joined lookups only.
	RecruiterUserID uuid.UUID `gorm:"->;-:migration"`
}

func (Job) TableName() string {
	return "jobs"
}
