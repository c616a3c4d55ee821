package profile

import (
	"time"

	"github.com/google/uuid"
)

// Recruiter is the one-to-one profile of a user with the recruiter role.
type Recruiter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recruiters_user" json:"user_id"`
	CompanyName string    `gorm:"type:varchar(255)" json:"company_name"`
	Website     string    `gorm:"type:varchar(255)" json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Employee is the one-to-one profile of a user with the employee role.
type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employees_user" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(15)" json:"phone_number"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
