package repository

import (
	"context"

	"poll-service/internal/ports/models"

	"gorm.io/gorm"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// CastVote records a user's vote for a poll option
func (r *VoteRepository) CastVote(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

// CountByPoll retrieves vote counts for a poll, keyed by option index
func (r *VoteRepository) CountByPoll(ctx context.Context, pollID string) (map[int]int64, error) {
	var rows []struct {
		OptionIndex int
		Count       int64
	}
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Select("option_index, COUNT(*) AS count").
		Where("poll_id = ?", pollID).
		Group("option_index").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.OptionIndex] = row.Count
	}
	return counts, nil
}
