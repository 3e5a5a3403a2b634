package participant

import "context"

type Repository interface {
	GroupExists(ctx context.Context, groupID int64) (bool, error)
	GetByNickname(ctx context.Context, groupID int64, nickname string) (*Participant, error)
	NicknameTaken(ctx context.Context, groupID int64, nickname string) (bool, error)
	Create(ctx context.Context, p *Participant) error
	// Delete removes the participant only. Records they authored stay in
	// place with their author reference nulled by the store.
	Delete(ctx context.Context, id int64) error
}
