package ranking

import (
	"context"
	"time"
)

type Repository interface {
	GroupExists(ctx context.Context, groupID int64) (bool, error)
	// AggregateByAuthor groups the records of one group whose created_at
	// falls inside [from, to] and whose author reference is non-null.
	AggregateByAuthor(ctx context.Context, groupID int64, from, to time.Time) ([]AuthorStats, error)
	FindNicknames(ctx context.Context, ids []int64) (map[int64]string, error)
}
