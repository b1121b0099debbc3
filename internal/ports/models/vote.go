package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote records one vote submission. Insert-only: there is no update or
// delete path. OptionIndex is stored as submitted; the referenced poll's
// option count is not checked at this layer, and nothing here prevents the
// same account voting twice unless the backend schema adds a uniqueness
// constraint.
type Vote struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	PollID      string    `gorm:"column:poll_id;type:uuid;not null;index" json:"poll_id"`
	UserID      string    `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	OptionIndex int       `gorm:"column:option_index;not null" json:"option_index"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// VoteRequest defines the input for submitting a vote
type VoteRequest struct {
	OptionIndex int `json:"option_index"`
}

// OptionResult is the tally for one option of a poll
type OptionResult struct {
	Text  string `json:"text"`
	Votes int64  `json:"votes"`
}

// PollResults is the public tally view of a poll
type PollResults struct {
	PollID     string         `json:"poll_id"`
	Question   string         `json:"question"`
	Options    []OptionResult `json:"options"`
	TotalVotes int64          `json:"total_votes"`
}
