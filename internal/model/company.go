package model

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant. Every user belongs to exactly one company and
// every resource is scoped to it.
type Company struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:varchar(1024)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Deleting a company with remaining users is blocked at the database level.
	Users []User `json:"-" gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT"`
}
