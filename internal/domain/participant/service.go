package participant

import (
	"context"
	"strings"
)

type BadgeRefresher interface {
	Refresh(ctx context.Context, groupID int64)
}

type Service struct {
	repo   Repository
	badges BadgeRefresher
}

func NewService(repo Repository, badges BadgeRefresher) *Service {
	return &Service{repo: repo, badges: badges}
}

func (s *Service) Join(ctx context.Context, input JoinInput) (*Participant, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if err := validateCredentials(nickname, input.Password); err != nil {
		return nil, err
	}

	exists, err := s.repo.GroupExists(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	taken, err := s.repo.NicknameTaken(ctx, input.GroupID, nickname)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNicknameTaken
	}

	p := Participant{
		Nickname: nickname,
		Password: input.Password,
		GroupID:  input.GroupID,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	s.badges.Refresh(ctx, input.GroupID)
	return &p, nil
}

func (s *Service) Leave(ctx context.Context, input LeaveInput) error {
	nickname := strings.TrimSpace(input.Nickname)
	if err := validateCredentials(nickname, input.Password); err != nil {
		return err
	}

	exists, err := s.repo.GroupExists(ctx, input.GroupID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrGroupNotFound
	}

	p, err := s.repo.GetByNickname(ctx, input.GroupID, nickname)
	if err != nil {
		return err
	}
	if p.Password != input.Password {
		return ErrPasswordMismatch
	}

	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	s.badges.Refresh(ctx, input.GroupID)
	return nil
}

func validateCredentials(nickname, password string) error {
	if nickname == "" {
		return ErrNicknameRequired
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	return nil
}
