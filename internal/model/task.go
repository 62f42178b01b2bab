package model

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a todo item. CompanyID is denormalized from the owning user
// so that tenant scoping never needs a join; it is set at creation and never
// mutable on its own.
type Task struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	IsCompleted bool      `json:"is_completed" gorm:"default:false"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
