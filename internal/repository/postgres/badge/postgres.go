package badge

import (
	"context"
	"time"

	badgedomain "exercise-app-go/internal/domain/badge"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountParticipants(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("participants").Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountRecords(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("records").Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) GetGroupState(ctx context.Context, groupID int64) (*badgedomain.GroupState, error) {
	type stateRow struct {
		ID        int64          `gorm:"column:id"`
		LikeCount int64          `gorm:"column:like_count"`
		Badges    pq.StringArray `gorm:"column:badges;type:text[]"`
	}

	var rows []stateRow
	err := r.db.WithContext(ctx).Raw(
		"SELECT id, like_count, badges FROM groups WHERE id = ?",
		groupID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &badgedomain.GroupState{
		ID:        rows[0].ID,
		LikeCount: rows[0].LikeCount,
		Badges:    rows[0].Badges,
	}, nil
}

func (r *PostgresRepository) UpdateBadges(ctx context.Context, groupID int64, badges []string) error {
	return r.db.WithContext(ctx).Table("groups").
		Where("id = ?", groupID).
		Updates(map[string]interface{}{
			"badges":     pq.StringArray(badges),
			"updated_at": time.Now().UTC(),
		}).Error
}
