package ranking

import (
	"context"
	"time"

	rankingdomain "exercise-app-go/internal/domain/ranking"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GroupExists(ctx context.Context, groupID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("groups").Where("id = ?", groupID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) AggregateByAuthor(ctx context.Context, groupID int64, from, to time.Time) ([]rankingdomain.AuthorStats, error) {
	query := `
SELECT r.author_id AS author_id,
       COUNT(*) AS record_count,
       COALESCE(SUM(r.time), 0) AS record_time
FROM records r
WHERE r.group_id = ?
  AND r.author_id IS NOT NULL
  AND r.created_at >= ?
  AND r.created_at <= ?
GROUP BY r.author_id
ORDER BY record_count DESC, record_time DESC, r.author_id ASC`

	var rows []struct {
		AuthorID    int64 `gorm:"column:author_id"`
		RecordCount int64 `gorm:"column:record_count"`
		RecordTime  int64 `gorm:"column:record_time"`
	}
	if err := r.db.WithContext(ctx).Raw(query, groupID, from, to).Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]rankingdomain.AuthorStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, rankingdomain.AuthorStats{
			AuthorID:    row.AuthorID,
			RecordCount: row.RecordCount,
			RecordTime:  row.RecordTime,
		})
	}
	return stats, nil
}

func (r *PostgresRepository) FindNicknames(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	var rows []struct {
		ID       int64  `gorm:"column:id"`
		Nickname string `gorm:"column:nickname"`
	}
	err := r.db.WithContext(ctx).Table("participants").
		Select("id, nickname").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	nicknames := make(map[int64]string, len(rows))
	for _, row := range rows {
		nicknames[row.ID] = row.Nickname
	}
	return nicknames, nil
}
