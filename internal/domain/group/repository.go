package group

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	List(ctx context.Context, filter ListFilter) ([]GroupWithStats, int64, error)
	GetByID(ctx context.Context, id int64) (*Group, error)
	GetWithStats(ctx context.Context, id int64) (*GroupWithStats, error)
	Create(ctx context.Context, g *Group) error
	// Update persists only the editable fields (name, description,
	// photo, goal, tags, discord urls). like_count and badges are never
	// written here; their own paths own those columns.
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, id int64) error

	// Owner linkage for two-phase creation and password checks.
	CreateOwner(ctx context.Context, groupID int64, nickname, password string) (*Owner, error)
	SetOwner(ctx context.Context, groupID, ownerID int64) error
	GetOwner(ctx context.Context, groupID int64) (*Owner, error)

	// Atomic counter deltas; the new value is computed by the store, never
	// read-modify-written in application code. DecrementLikeCount only
	// applies while like_count > 0 and reports whether a row changed.
	IncrementLikeCount(ctx context.Context, id int64) (int64, error)
	DecrementLikeCount(ctx context.Context, id int64) (int64, bool, error)
}
