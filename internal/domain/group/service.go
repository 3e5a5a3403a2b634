package group

import (
	"context"
	"strings"
	"time"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// BadgeRefresher re-derives a group's badge set after a counter-affecting
// mutation. Implementations must never fail the caller.
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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]GroupWithStats, int64, error) {
	switch filter.OrderBy {
	case "":
		filter.OrderBy = OrderByCreatedAt
	case OrderByCreatedAt, OrderByLikeCount, OrderByParticipantCount:
	default:
		return nil, 0, ErrInvalidOrder
	}

	if filter.Sort != SortAsc {
		filter.Sort = SortDesc
	}
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// Create builds a group and its owner in two phases inside one
// transaction: the group is created owner-less, the owner participant is
// created against it, then the group's owner reference is linked. This
// avoids a circular required reference between the two rows.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Group, error) {
	if err := validateGroupInput(input.Name, input.GoalRep); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.OwnerNickname) == "" || input.OwnerPassword == "" {
		return nil, ErrOwnerRequired
	}

	var created Group
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		g := Group{
			Name:              strings.TrimSpace(input.Name),
			Description:       strings.TrimSpace(input.Description),
			PhotoURL:          input.PhotoURL,
			GoalRep:           input.GoalRep,
			Tags:              input.Tags,
			DiscordWebhookURL: input.DiscordWebhookURL,
			DiscordInviteURL:  input.DiscordInviteURL,
		}
		if err := tx.Create(ctx, &g); err != nil {
			return err
		}

		owner, err := tx.CreateOwner(ctx, g.ID, strings.TrimSpace(input.OwnerNickname), input.OwnerPassword)
		if err != nil {
			return err
		}

		if err := tx.SetOwner(ctx, g.ID, owner.ID); err != nil {
			return err
		}

		g.OwnerID = &owner.ID
		created = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*GroupWithStats, error) {
	return s.repo.GetWithStats(ctx, id)
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Group, error) {
	if err := validateGroupInput(input.Name, input.GoalRep); err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, input.ID, input.OwnerPassword); err != nil {
		return nil, err
	}

	g, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	g.Name = strings.TrimSpace(input.Name)
	g.Description = strings.TrimSpace(input.Description)
	g.PhotoURL = input.PhotoURL
	g.GoalRep = input.GoalRep
	g.Tags = input.Tags
	g.DiscordWebhookURL = input.DiscordWebhookURL
	g.DiscordInviteURL = input.DiscordInviteURL
	g.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, id int64, ownerPassword string) error {
	if err := s.authorizeOwner(ctx, id, ownerPassword); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// IncrementLike bumps the like counter by one and re-derives badges once
// the new count is durable.
func (s *Service) IncrementLike(ctx context.Context, id int64) (*LikeResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	likeCount, err := s.repo.IncrementLikeCount(ctx, id)
	if err != nil {
		return nil, err
	}

	s.badges.Refresh(ctx, id)
	return &LikeResult{ID: id, LikeCount: likeCount}, nil
}

// DecrementLike lowers the like counter by one. The floor of zero is
// enforced by the store-side guard, so concurrent decrements cannot drive
// the counter negative.
func (s *Service) DecrementLike(ctx context.Context, id int64) (*LikeResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	likeCount, decremented, err := s.repo.DecrementLikeCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !decremented {
		return nil, ErrLikeCountAtZero
	}

	s.badges.Refresh(ctx, id)
	return &LikeResult{ID: id, LikeCount: likeCount}, nil
}

func (s *Service) authorizeOwner(ctx context.Context, groupID int64, password string) error {
	if _, err := s.repo.GetByID(ctx, groupID); err != nil {
		return err
	}

	owner, err := s.repo.GetOwner(ctx, groupID)
	if err != nil {
		return err
	}
	if owner.Password != password {
		return ErrPasswordMismatch
	}
	return nil
}

func validateGroupInput(name string, goalRep int) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if goalRep <= 0 {
		return ErrInvalidGoalRep
	}
	return nil
}
