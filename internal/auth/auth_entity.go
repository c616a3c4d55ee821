package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Role is fixed at signup; accounts are deactivated, never deleted.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Role        string     `gorm:"type:varchar(20);not null;default:'employee'"`
	Password    string     `gorm:"type:varchar(255);not null"`
	IsActive    bool       `gorm:"not null;default:true"`
	IsStaff     bool       `gorm:"not null;default:false"`
	IsSuperuser bool       `gorm:"not null;default:false"`
	DateJoined  time.Time  `gorm:"not null"`
	LastLogin   *time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
