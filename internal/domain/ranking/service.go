package ranking

import (
	"context"
	"sort"
	"time"
)

type Service struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return NewServiceWithConfig(repo, Config{TopN: defaultTopN})
}

func NewServiceWithConfig(repo Repository, cfg Config) *Service {
	if cfg.TopN <= 0 {
		cfg.TopN = defaultTopN
	}
	return &Service{repo: repo, cfg: cfg, now: time.Now}
}

// TopParticipants computes the leaderboard of a group over the period's
// window: per-author record count and summed time, ordered by count
// descending, then summed time descending, then author id ascending to
// keep the residual tie deterministic, truncated to the top N.
func (s *Service) TopParticipants(ctx context.Context, groupID int64, period Period) ([]Entry, error) {
	exists, err := s.repo.GroupExists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	from, to := period.Range(s.now())
	stats, err := s.repo.AggregateByAuthor(ctx, groupID, from, to)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return []Entry{}, nil
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].RecordCount != stats[j].RecordCount {
			return stats[i].RecordCount > stats[j].RecordCount
		}
		if stats[i].RecordTime != stats[j].RecordTime {
			return stats[i].RecordTime > stats[j].RecordTime
		}
		return stats[i].AuthorID < stats[j].AuthorID
	})

	if len(stats) > s.cfg.TopN {
		stats = stats[:s.cfg.TopN]
	}

	ids := make([]int64, 0, len(stats))
	for _, row := range stats {
		ids = append(ids, row.AuthorID)
	}

	nicknames, err := s.repo.FindNicknames(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(stats))
	for _, row := range stats {
		nickname, ok := nicknames[row.AuthorID]
		if !ok {
			nickname = UnknownNickname
		}
		entries = append(entries, Entry{
			ParticipantID: row.AuthorID,
			Nickname:      nickname,
			RecordCount:   row.RecordCount,
			RecordTime:    row.RecordTime,
		})
	}

	return entries, nil
}
