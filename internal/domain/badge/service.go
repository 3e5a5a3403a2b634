package badge

import (
	"context"

	"exercise-app-go/pkg/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Evaluate recomputes the badge set of a group from its current counters
// and persists it only when it differs from the stored set. A missing
// group yields a zero Result and no error: evaluation is a secondary
// effect of other mutations and must never fail them.
func (s *Service) Evaluate(ctx context.Context, groupID int64) (Result, error) {
	participants, err := s.repo.CountParticipants(ctx, groupID)
	if err != nil {
		return Result{}, err
	}

	records, err := s.repo.CountRecords(ctx, groupID)
	if err != nil {
		return Result{}, err
	}

	state, err := s.repo.GetGroupState(ctx, groupID)
	if err != nil {
		return Result{}, err
	}
	if state == nil {
		return Result{}, nil
	}

	set := newBadgeSet(state.Badges)
	set.apply(ParticipantTen, participants >= participantThreshold)
	set.apply(RecordHundred, records >= recordThreshold)
	set.apply(LikeHundred, state.LikeCount >= likeThreshold)

	if set.equals(state.Badges) {
		return Result{Updated: false, Badges: state.Badges}, nil
	}

	badges := set.values()
	if err := s.repo.UpdateBadges(ctx, groupID, badges); err != nil {
		return Result{}, err
	}

	return Result{Updated: true, Badges: badges}, nil
}

// Refresh runs Evaluate and swallows any failure, logging it instead.
// Callers fire it after their own mutation has committed.
func (s *Service) Refresh(ctx context.Context, groupID int64) {
	if _, err := s.Evaluate(ctx, groupID); err != nil {
		s.log.InternalError("badge: refresh failed", err, "group_id", groupID)
	}
}
