package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Poll is a question with an ordered list of answer options. UserID is set
// once at creation and never changes; mutations are scoped to the owner.
type Poll struct {
	ID        string                      `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string                      `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Question  string                      `gorm:"column:question;size:255;not null" json:"question"`
	Options   datatypes.JSONSlice[string] `gorm:"column:options" json:"options"`
	CreatedAt time.Time                   `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for Poll
func (Poll) TableName() string {
	return "polls"
}

func (p *Poll) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// CreatePollRequest defines the input for creating a poll
type CreatePollRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required"`
}

// UpdatePollRequest defines the input for updating a poll
type UpdatePollRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required"`
}
