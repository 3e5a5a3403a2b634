package record

import "context"

type Repository interface {
	GroupExists(ctx context.Context, groupID int64) (bool, error)
	GetAuthor(ctx context.Context, groupID int64, nickname string) (*Author, error)
	Create(ctx context.Context, r *Record) error
	List(ctx context.Context, groupID int64, filter ListFilter) ([]RecordWithAuthor, int64, error)
	GetByID(ctx context.Context, groupID, recordID int64) (*RecordWithAuthor, error)
}
