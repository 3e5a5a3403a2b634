package group

import (
	"context"
	"errors"
	"fmt"
	"time"

	groupdomain "exercise-app-go/internal/domain/group"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(groupdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

type groupStatsRow struct {
	ID                int64          `gorm:"column:id"`
	Name              string         `gorm:"column:name"`
	Description       string         `gorm:"column:description"`
	PhotoURL          *string        `gorm:"column:photo_url"`
	GoalRep           int            `gorm:"column:goal_rep"`
	Tags              pq.StringArray `gorm:"column:tags;type:text[]"`
	DiscordWebhookURL *string        `gorm:"column:discord_webhook_url"`
	DiscordInviteURL  *string        `gorm:"column:discord_invite_url"`
	LikeCount         int64          `gorm:"column:like_count"`
	Badges            pq.StringArray `gorm:"column:badges;type:text[]"`
	OwnerID           *int64         `gorm:"column:owner_id"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	ParticipantCount  int64          `gorm:"column:participant_count"`
	OwnerNickname     *string        `gorm:"column:owner_nickname"`
}

const groupStatsSelect = `
SELECT g.id, g.name, g.description, g.photo_url, g.goal_rep, g.tags,
       g.discord_webhook_url, g.discord_invite_url, g.like_count, g.badges,
       g.owner_id, g.created_at, g.updated_at,
       COUNT(p.id) AS participant_count,
       o.nickname AS owner_nickname
FROM groups g
LEFT JOIN participants p ON p.group_id = g.id
LEFT JOIN participants o ON o.id = g.owner_id`

func (r *PostgresRepository) List(ctx context.Context, filter groupdomain.ListFilter) ([]groupdomain.GroupWithStats, int64, error) {
	var orderExpr string
	switch filter.OrderBy {
	case groupdomain.OrderByLikeCount:
		orderExpr = "g.like_count"
	case groupdomain.OrderByParticipantCount:
		orderExpr = "participant_count"
	default:
		orderExpr = "g.created_at"
	}

	direction := "DESC"
	if filter.Sort == groupdomain.SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf("%s GROUP BY g.id, o.nickname ORDER BY %s %s, g.id ASC LIMIT ? OFFSET ?",
		groupStatsSelect, orderExpr, direction)

	var rows []groupStatsRow
	if err := r.db.WithContext(ctx).Raw(query, filter.Limit, filter.Offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Table("groups").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	groups := make([]groupdomain.GroupWithStats, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, row.toDomain())
	}
	return groups, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*groupdomain.Group, error) {
	var g groupdomain.Group
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupdomain.ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) GetWithStats(ctx context.Context, id int64) (*groupdomain.GroupWithStats, error) {
	query := groupStatsSelect + " WHERE g.id = ? GROUP BY g.id, o.nickname"

	var rows []groupStatsRow
	if err := r.db.WithContext(ctx).Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, groupdomain.ErrGroupNotFound
	}

	g := rows[0].toDomain()
	return &g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g *groupdomain.Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// Update writes only the editable columns. like_count and badges are
// owned by the counter and badge paths and must not be written from a
// row snapshot.
func (r *PostgresRepository) Update(ctx context.Context, g *groupdomain.Group) error {
	return r.db.WithContext(ctx).Model(&groupdomain.Group{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"name":                g.Name,
			"description":         g.Description,
			"photo_url":           g.PhotoURL,
			"goal_rep":            g.GoalRep,
			"tags":                g.Tags,
			"discord_webhook_url": g.DiscordWebhookURL,
			"discord_invite_url":  g.DiscordInviteURL,
			"updated_at":          g.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&groupdomain.Group{}, "id = ?", id).Error
}

func (r *PostgresRepository) CreateOwner(ctx context.Context, groupID int64, nickname, password string) (*groupdomain.Owner, error) {
	var ownerID int64
	err := r.db.WithContext(ctx).Raw(
		"INSERT INTO participants (nickname, password, group_id, created_at, updated_at) VALUES (?, ?, ?, NOW(), NOW()) RETURNING id",
		nickname, password, groupID,
	).Scan(&ownerID).Error
	if err != nil {
		return nil, err
	}
	return &groupdomain.Owner{ID: ownerID, Nickname: nickname, Password: password}, nil
}

func (r *PostgresRepository) SetOwner(ctx context.Context, groupID, ownerID int64) error {
	return r.db.WithContext(ctx).Model(&groupdomain.Group{}).
		Where("id = ?", groupID).
		Update("owner_id", ownerID).Error
}

func (r *PostgresRepository) GetOwner(ctx context.Context, groupID int64) (*groupdomain.Owner, error) {
	var owners []groupdomain.Owner
	err := r.db.WithContext(ctx).Raw(
		"SELECT p.id, p.nickname, p.password FROM participants p JOIN groups g ON g.owner_id = p.id WHERE g.id = ?",
		groupID,
	).Scan(&owners).Error
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, groupdomain.ErrOwnerNotFound
	}
	return &owners[0], nil
}

func (r *PostgresRepository) IncrementLikeCount(ctx context.Context, id int64) (int64, error) {
	var counts []int64
	err := r.db.WithContext(ctx).Raw(
		"UPDATE groups SET like_count = like_count + 1, updated_at = NOW() WHERE id = ? RETURNING like_count",
		id,
	).Scan(&counts).Error
	if err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		return 0, groupdomain.ErrGroupNotFound
	}
	return counts[0], nil
}

func (r *PostgresRepository) DecrementLikeCount(ctx context.Context, id int64) (int64, bool, error) {
	var counts []int64
	err := r.db.WithContext(ctx).Raw(
		"UPDATE groups SET like_count = like_count - 1, updated_at = NOW() WHERE id = ? AND like_count > 0 RETURNING like_count",
		id,
	).Scan(&counts).Error
	if err != nil {
		return 0, false, err
	}
	if len(counts) == 0 {
		// Zero rows means either the counter is at its floor or the group
		// vanished since the caller's existence check. Tell them apart.
		var exists int64
		if err := r.db.WithContext(ctx).Table("groups").Where("id = ?", id).Count(&exists).Error; err != nil {
			return 0, false, err
		}
		if exists == 0 {
			return 0, false, groupdomain.ErrGroupNotFound
		}
		return 0, false, nil
	}
	return counts[0], true, nil
}

func (row groupStatsRow) toDomain() groupdomain.GroupWithStats {
	return groupdomain.GroupWithStats{
		Group: groupdomain.Group{
			ID:                row.ID,
			Name:              row.Name,
			Description:       row.Description,
			PhotoURL:          row.PhotoURL,
			GoalRep:           row.GoalRep,
			Tags:              row.Tags,
			DiscordWebhookURL: row.DiscordWebhookURL,
			DiscordInviteURL:  row.DiscordInviteURL,
			LikeCount:         row.LikeCount,
			Badges:            row.Badges,
			OwnerID:           row.OwnerID,
			CreatedAt:         row.CreatedAt,
			UpdatedAt:         row.UpdatedAt,
		},
		ParticipantCount: row.ParticipantCount,
		OwnerNickname:    row.OwnerNickname,
	}
}
