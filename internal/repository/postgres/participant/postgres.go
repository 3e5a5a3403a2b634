package participant

import (
	"context"
	"errors"

	participantdomain "exercise-app-go/internal/domain/participant"
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

func (r *PostgresRepository) GetByNickname(ctx context.Context, groupID int64, nickname string) (*participantdomain.Participant, error) {
	var p participantdomain.Participant
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND nickname = ?", groupID, nickname).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, participantdomain.ErrParticipantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) NicknameTaken(ctx context.Context, groupID int64, nickname string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&participantdomain.Participant{}).
		Where("group_id = ? AND nickname = ?", groupID, nickname).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *participantdomain.Participant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&participantdomain.Participant{}, "id = ?", id).Error
}
