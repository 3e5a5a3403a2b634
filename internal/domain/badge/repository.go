package badge

import "context"

type Repository interface {
	CountParticipants(ctx context.Context, groupID int64) (int64, error)
	CountRecords(ctx context.Context, groupID int64) (int64, error)
	// GetGroupState returns (nil, nil) when the group does not exist.
	GetGroupState(ctx context.Context, groupID int64) (*GroupState, error)
	UpdateBadges(ctx context.Context, groupID int64, badges []string) error
}
