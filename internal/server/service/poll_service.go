package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"poll-service/internal/ports/models"
	"poll-service/internal/validation"

	"gorm.io/gorm"
)

const (
	MsgLoginToCreate    = "You must be logged in to create a poll."
	MsgLoginToUpdate    = "You must be logged in to update a poll."
	MsgLoginToDelete    = "You must be logged in to delete a poll."
	MsgLoginToVote      = "You must be logged in to vote."
	MsgNotAuthenticated = "Not authenticated"
	MsgPollNotFound     = "Poll not found."
	MsgInvalidQuestion  = "Please provide a valid question."
	MsgInvalidOption    = "Each option must be between 2 and 200 characters."
	MsgTooFewOptions    = "Please provide at least two options."
	MsgCreateFailed     = "Failed to create poll."
	MsgUpdateFailed     = "Failed to update poll."
	MsgDeleteFailed     = "Failed to delete poll."
	MsgFetchFailed      = "Failed to fetch polls."
	MsgFetchOneFailed   = "Failed to fetch poll."
	MsgVoteFailed       = "Failed to submit vote."
)

// PollStore is the poll half of the data backend.
type PollStore interface {
	CreatePoll(ctx context.Context, poll *models.Poll) error
	PollsByUser(ctx context.Context, userID string) ([]models.Poll, error)
	PollByID(ctx context.Context, id string) (*models.Poll, error)
	UpdatePollOwned(ctx context.Context, id, userID, question string, options []string) error
	DeletePollOwned(ctx context.Context, id, userID string) error
}

// VoteStore is the vote half of the data backend.
type VoteStore interface {
	CastVote(ctx context.Context, vote *models.Vote) error
	CountByPoll(ctx context.Context, pollID string) (map[int]int64, error)
}

// ListCache is the invalidatable per-user poll listing. Implementations must
// treat it as best-effort; a miss or failure only costs a store read.
type ListCache interface {
	GetUserPolls(ctx context.Context, userID string) ([]models.Poll, bool)
	SetUserPolls(ctx context.Context, userID string, polls []models.Poll)
	Invalidate(ctx context.Context, userID string)
}

// PollService validates input, resolves the caller's right to act, and
// passes through to the data backend. Ownership on mutation is enforced by
// owner-scoped writes, never by a separate ownership read.
type PollService struct {
	polls PollStore
	votes VoteStore
	cache ListCache
}

func NewPollService(polls PollStore, votes VoteStore, cache ListCache) *PollService {
	return &PollService{polls: polls, votes: votes, cache: cache}
}

// normalizeOptions trims every option and drops the empty ones, preserving
// order. Duplicate values are kept.
func normalizeOptions(raw []string) []string {
	options := make([]string, 0, len(raw))
	for _, opt := range raw {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			continue
		}
		options = append(options, trimmed)
	}
	return options
}

func validatePollInput(question string, options []string) error {
	if question == "" || !validation.PollText(question) {
		return models.NewValidationError(MsgInvalidQuestion)
	}
	if len(options) < 2 {
		return models.NewValidationError(MsgTooFewOptions)
	}
	for _, opt := range options {
		if !validation.PollText(opt) {
			return models.NewValidationError(MsgInvalidOption)
		}
	}
	return nil
}

// CreatePoll validates, then inserts a poll owned by the caller. Validation
// runs before the authentication check so a malformed submission is reported
// the same way whether or not the caller is signed in.
func (s *PollService) CreatePoll(ctx context.Context, caller *models.UserProfile, req models.CreatePollRequest) (*models.Poll, error) {
	question := strings.TrimSpace(req.Question)
	options := normalizeOptions(req.Options)

	if err := validatePollInput(question, options); err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, models.NewAuthRequiredError(MsgLoginToCreate)
	}

	poll := &models.Poll{
		UserID:   caller.ID,
		Question: question,
		Options:  options,
	}
	if err := s.polls.CreatePoll(ctx, poll); err != nil {
		slog.Warn("poll create failed", "user_id", caller.ID, "error", err)
		return nil, models.NewBackendError(MsgCreateFailed)
	}

	s.cache.Invalidate(ctx, caller.ID)
	return poll, nil
}

// GetUserPolls lists the caller's polls, newest first. An unauthenticated
// caller gets an empty list and no backend round trip.
func (s *PollService) GetUserPolls(ctx context.Context, caller *models.UserProfile) ([]models.Poll, error) {
	if caller == nil {
		return []models.Poll{}, models.NewAuthRequiredError(MsgNotAuthenticated)
	}

	if polls, ok := s.cache.GetUserPolls(ctx, caller.ID); ok {
		return polls, nil
	}

	polls, err := s.polls.PollsByUser(ctx, caller.ID)
	if err != nil {
		slog.Warn("poll listing failed", "user_id", caller.ID, "error", err)
		return []models.Poll{}, models.NewBackendError(MsgFetchFailed)
	}
	if polls == nil {
		polls = []models.Poll{}
	}

	s.cache.SetUserPolls(ctx, caller.ID, polls)
	return polls, nil
}

// GetPollByID reads a single poll. No ownership check: reading by id is
// public.
func (s *PollService) GetPollByID(ctx context.Context, id string) (*models.Poll, error) {
	poll, err := s.polls.PollByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(MsgPollNotFound)
		}
		slog.Warn("poll read failed", "poll_id", id, "error", err)
		return nil, models.NewBackendError(MsgFetchOneFailed)
	}
	return poll, nil
}

// SubmitVote inserts a vote row for the caller. The option index is recorded
// as submitted; it is not checked against the poll's option count, and a
// repeat vote by the same account is not rejected here.
func (s *PollService) SubmitVote(ctx context.Context, caller *models.UserProfile, pollID string, optionIndex int) error {
	if caller == nil {
		return models.NewAuthRequiredError(MsgLoginToVote)
	}

	vote := &models.Vote{
		PollID:      pollID,
		UserID:      caller.ID,
		OptionIndex: optionIndex,
	}
	if err := s.votes.CastVote(ctx, vote); err != nil {
		slog.Warn("vote insert failed", "poll_id", pollID, "user_id", caller.ID, "error", err)
		return models.NewBackendError(MsgVoteFailed)
	}
	return nil
}

// GetPollResults tallies votes for a poll, public like GetPollByID. Votes
// recorded with an index beyond the current option list count toward the
// total but have no per-option bucket.
func (s *PollService) GetPollResults(ctx context.Context, id string) (*models.PollResults, error) {
	poll, err := s.GetPollByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.votes.CountByPoll(ctx, id)
	if err != nil {
		slog.Warn("vote tally failed", "poll_id", id, "error", err)
		return nil, models.NewBackendError(MsgFetchOneFailed)
	}

	results := &models.PollResults{
		PollID:   poll.ID,
		Question: poll.Question,
		Options:  make([]models.OptionResult, len(poll.Options)),
	}
	for i, opt := range poll.Options {
		results.Options[i] = models.OptionResult{Text: opt, Votes: counts[i]}
	}
	for _, n := range counts {
		results.TotalVotes += n
	}
	return results, nil
}

// UpdatePoll applies create-grade validation, then updates the row matching
// both id and owner. Zero matched rows (wrong owner or missing id) is still
// reported as success.
func (s *PollService) UpdatePoll(ctx context.Context, caller *models.UserProfile, id string, req models.UpdatePollRequest) error {
	question := strings.TrimSpace(req.Question)
	options := normalizeOptions(req.Options)

	if err := validatePollInput(question, options); err != nil {
		return err
	}
	if caller == nil {
		return models.NewAuthRequiredError(MsgLoginToUpdate)
	}

	if err := s.polls.UpdatePollOwned(ctx, id, caller.ID, question, options); err != nil {
		slog.Warn("poll update failed", "poll_id", id, "user_id", caller.ID, "error", err)
		return models.NewBackendError(MsgUpdateFailed)
	}

	s.cache.Invalidate(ctx, caller.ID)
	return nil
}

// DeletePoll deletes the row matching both id and owner. Zero matched rows
// is still reported as success.
func (s *PollService) DeletePoll(ctx context.Context, caller *models.UserProfile, id string) error {
	if caller == nil {
		return models.NewAuthRequiredError(MsgLoginToDelete)
	}

	if err := s.polls.DeletePollOwned(ctx, id, caller.ID); err != nil {
		slog.Warn("poll delete failed", "poll_id", id, "user_id", caller.ID, "error", err)
		return models.NewBackendError(MsgDeleteFailed)
	}

	s.cache.Invalidate(ctx, caller.ID)
	return nil
}
