package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	recorddomain "exercise-app-go/internal/domain/record"
	"github.com/lib/pq"
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

func (r *PostgresRepository) GetAuthor(ctx context.Context, groupID int64, nickname string) (*recorddomain.Author, error) {
	var authors []recorddomain.Author
	err := r.db.WithContext(ctx).Raw(
		"SELECT id, nickname, password FROM participants WHERE group_id = ? AND nickname = ?",
		groupID, nickname,
	).Scan(&authors).Error
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return &authors[0], nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *recorddomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

type recordRow struct {
	ID             int64          `gorm:"column:id"`
	ExerciseType   string         `gorm:"column:exercise_type"`
	Description    string         `gorm:"column:description"`
	Time           int64          `gorm:"column:time"`
	Distance       float64        `gorm:"column:distance"`
	Photos         pq.StringArray `gorm:"column:photos;type:text[]"`
	AuthorID       *int64         `gorm:"column:author_id"`
	GroupID        int64          `gorm:"column:group_id"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	AuthorNickname *string        `gorm:"column:author_nickname"`
}

const recordSelect = `
SELECT r.id, r.exercise_type, r.description, r.time, r.distance, r.photos,
       r.author_id, r.group_id, r.created_at, r.updated_at,
       p.nickname AS author_nickname
FROM records r
LEFT JOIN participants p ON p.id = r.author_id`

func (r *PostgresRepository) List(ctx context.Context, groupID int64, filter recorddomain.ListFilter) ([]recorddomain.RecordWithAuthor, int64, error) {
	conditions := []string{"r.group_id = ?"}
	args := []interface{}{groupID}

	if filter.Search != "" {
		conditions = append(conditions, "p.nickname ILIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	orderExpr := "r.created_at"
	if filter.OrderBy == recorddomain.OrderByTime {
		orderExpr = "r.time"
	}
	direction := "DESC"
	if filter.Sort == "asc" {
		direction = "ASC"
	}

	where := strings.Join(conditions, " AND ")
	query := fmt.Sprintf("%s WHERE %s ORDER BY %s %s, r.id ASC LIMIT ? OFFSET ?",
		recordSelect, where, orderExpr, direction)

	var rows []recordRow
	listArgs := append(append([]interface{}{}, args...), filter.Limit, filter.Offset)
	if err := r.db.WithContext(ctx).Raw(query, listArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	countQuery := "SELECT COUNT(*) FROM records r LEFT JOIN participants p ON p.id = r.author_id WHERE " + where
	var total int64
	if err := r.db.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]recorddomain.RecordWithAuthor, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, groupID, recordID int64) (*recorddomain.RecordWithAuthor, error) {
	query := recordSelect + " WHERE r.id = ? AND r.group_id = ?"

	var rows []recordRow
	if err := r.db.WithContext(ctx).Raw(query, recordID, groupID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, recorddomain.ErrRecordNotFound
	}

	rec := rows[0].toDomain()
	return &rec, nil
}

func (row recordRow) toDomain() recorddomain.RecordWithAuthor {
	return recorddomain.RecordWithAuthor{
		Record: recorddomain.Record{
			ID:           row.ID,
			ExerciseType: row.ExerciseType,
			Description:  row.Description,
			Time:         row.Time,
			Distance:     row.Distance,
			Photos:       row.Photos,
			AuthorID:     row.AuthorID,
			GroupID:      row.GroupID,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
		AuthorNickname: row.AuthorNickname,
	}
}
