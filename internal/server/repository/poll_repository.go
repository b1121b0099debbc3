package repository

import (
	"context"

	"poll-service/internal/ports/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) *PollRepository {
	return &PollRepository{db: db}
}

// CreatePoll creates a new poll in the database
func (r *PollRepository) CreatePoll(ctx context.Context, poll *models.Poll) error {
	return r.db.WithContext(ctx).Create(poll).Error
}

// PollsByUser retrieves a user's polls, newest first
func (r *PollRepository) PollsByUser(ctx context.Context, userID string) ([]models.Poll, error) {
	var polls []models.Poll
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&polls).Error
	if err != nil {
		return nil, err
	}
	return polls, nil
}

// PollByID retrieves a single poll by id
func (r *PollRepository) PollByID(ctx context.Context, id string) (*models.Poll, error) {
	var poll models.Poll
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&poll).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// UpdatePollOwned updates question and options on the row matching both id
// and owner. A non-owner caller matches zero rows, which is not an error.
func (r *PollRepository) UpdatePollOwned(ctx context.Context, id, userID, question string, options []string) error {
	return r.db.WithContext(ctx).Model(&models.Poll{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"question": question,
			"options":  datatypes.NewJSONSlice(options),
		}).Error
}

// DeletePollOwned deletes the row matching both id and owner. A non-owner
// caller matches zero rows, which is not an error.
func (r *PollRepository) DeletePollOwned(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Poll{}).Error
}
