package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a principal. The password hash is never serialized outward.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	FirstName      string    `json:"first_name" gorm:"type:varchar(50)"`
	LastName       string    `json:"last_name" gorm:"type:varchar(50)"`
	HashedPassword string    `json:"-" gorm:"type:varchar(255);not null"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	IsAdmin        bool      `json:"is_admin" gorm:"default:false"`
	CompanyID      uuid.UUID `json:"company_id" gorm:"type:uuid;index;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Tasks []Task `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
