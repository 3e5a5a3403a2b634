package record

import (
	"context"
	"strings"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
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

func (s *Service) Create(ctx context.Context, input CreateInput) (*RecordWithAuthor, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	exists, err := s.repo.GroupExists(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	author, err := s.repo.GetAuthor(ctx, input.GroupID, strings.TrimSpace(input.AuthorNickname))
	if err != nil {
		return nil, err
	}
	// Absent author and wrong password deliberately collapse into the same
	// failure so the response does not leak which nicknames exist.
	if author == nil || author.Password != input.AuthorPassword {
		return nil, ErrAuthorAuthFailed
	}

	r := Record{
		ExerciseType: input.ExerciseType,
		Description:  strings.TrimSpace(input.Description),
		Time:         input.Time,
		Distance:     input.Distance,
		Photos:       input.Photos,
		AuthorID:     &author.ID,
		GroupID:      input.GroupID,
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		return nil, err
	}

	s.badges.Refresh(ctx, input.GroupID)

	nickname := author.Nickname
	return &RecordWithAuthor{Record: r, AuthorNickname: &nickname}, nil
}

func (s *Service) List(ctx context.Context, groupID int64, filter ListFilter) ([]RecordWithAuthor, int64, error) {
	switch filter.OrderBy {
	case "":
		filter.OrderBy = OrderByCreatedAt
	case OrderByCreatedAt, OrderByTime:
	default:
		return nil, 0, ErrInvalidOrder
	}

	if filter.Sort != "asc" {
		filter.Sort = "desc"
	}
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Search = strings.TrimSpace(filter.Search)

	exists, err := s.repo.GroupExists(ctx, groupID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrGroupNotFound
	}

	return s.repo.List(ctx, groupID, filter)
}

func (s *Service) Get(ctx context.Context, groupID, recordID int64) (*RecordWithAuthor, error) {
	return s.repo.GetByID(ctx, groupID, recordID)
}

func validateCreateInput(input CreateInput) error {
	switch input.ExerciseType {
	case ExerciseRun, ExerciseBike, ExerciseSwim:
	default:
		return ErrInvalidExerciseType
	}
	if input.Time <= 0 {
		return ErrInvalidTime
	}
	if input.Distance < 0 {
		return ErrInvalidDistance
	}
	if len(input.Photos) > MaxPhotos {
		return ErrTooManyPhotos
	}
	if strings.TrimSpace(input.AuthorNickname) == "" || input.AuthorPassword == "" {
		return ErrAuthorAuthFailed
	}
	return nil
}
