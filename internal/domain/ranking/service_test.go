package ranking

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRankingRepo struct {
	groups    map[int64]bool
	stats     []AuthorStats
	nicknames map[int64]string
	from, to  time.Time
}

func newFakeRankingRepo(groupIDs ...int64) *fakeRankingRepo {
	r := &fakeRankingRepo{
		groups:    make(map[int64]bool),
		nicknames: make(map[int64]string),
	}
	for _, id := range groupIDs {
		r.groups[id] = true
	}
	return r
}

func (r *fakeRankingRepo) GroupExists(ctx context.Context, groupID int64) (bool, error) {
	return r.groups[groupID], nil
}

func (r *fakeRankingRepo) AggregateByAuthor(ctx context.Context, groupID int64, from, to time.Time) ([]AuthorStats, error) {
	r.from, r.to = from, to
	return r.stats, nil
}

func (r *fakeRankingRepo) FindNicknames(ctx context.Context, ids []int64) (map[int64]string, error) {
	found := make(map[int64]string, len(ids))
	for _, id := range ids {
		if name, ok := r.nicknames[id]; ok {
			found[id] = name
		}
	}
	return found, nil
}

func TestTopParticipantsOrder(t *testing.T) {
	repo := newFakeRankingRepo(1)
	repo.stats = []AuthorStats{
		{AuthorID: 1, RecordCount: 3, RecordTime: 900},
		{AuthorID: 2, RecordCount: 5, RecordTime: 600},
		{AuthorID: 3, RecordCount: 3, RecordTime: 1200},
	}
	repo.nicknames = map[int64]string{1: "ann", 2: "bob", 3: "cleo"}
	svc := NewService(repo)

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodWeekly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []int64{2, 3, 1}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ParticipantID != id {
			t.Fatalf("expected participant %d at position %d, got %d", id, i, entries[i].ParticipantID)
		}
	}
}

func TestTopParticipantsFullTieOrderedByID(t *testing.T) {
	repo := newFakeRankingRepo(1)
	repo.stats = []AuthorStats{
		{AuthorID: 9, RecordCount: 2, RecordTime: 300},
		{AuthorID: 4, RecordCount: 2, RecordTime: 300},
	}
	repo.nicknames = map[int64]string{4: "ann", 9: "bob"}
	svc := NewService(repo)

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodWeekly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entries[0].ParticipantID != 4 || entries[1].ParticipantID != 9 {
		t.Fatalf("expected full ties ordered by participant id, got %v", entries)
	}
}

func TestTopParticipantsTruncates(t *testing.T) {
	repo := newFakeRankingRepo(1)
	for i := int64(1); i <= 15; i++ {
		repo.stats = append(repo.stats, AuthorStats{AuthorID: i, RecordCount: i, RecordTime: i * 100})
		repo.nicknames[i] = "p"
	}
	svc := NewService(repo)

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodWeekly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected leaderboard capped at 10, got %d", len(entries))
	}
	if entries[0].ParticipantID != 15 {
		t.Fatalf("expected the busiest author first, got %d", entries[0].ParticipantID)
	}
}

func TestTopParticipantsTieAtCutoff(t *testing.T) {
	repo := newFakeRankingRepo(1)
	for i := int64(1); i <= 9; i++ {
		repo.stats = append(repo.stats, AuthorStats{AuthorID: i, RecordCount: 20 - i, RecordTime: 1000})
		repo.nicknames[i] = "p"
	}
	// Authors 12 and 11 tie exactly on count and time at the cutoff; the
	// lower id takes the last slot every run.
	repo.stats = append(repo.stats,
		AuthorStats{AuthorID: 12, RecordCount: 2, RecordTime: 400},
		AuthorStats{AuthorID: 11, RecordCount: 2, RecordTime: 400},
	)
	repo.nicknames[11] = "kept"
	repo.nicknames[12] = "cut"
	svc := NewService(repo)

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodWeekly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected leaderboard capped at 10, got %d", len(entries))
	}
	last := entries[len(entries)-1]
	if last.ParticipantID != 11 {
		t.Fatalf("expected the lower id to take the tied last slot, got %d", last.ParticipantID)
	}
	for _, e := range entries {
		if e.ParticipantID == 12 {
			t.Fatalf("expected the tied author beyond the cutoff excluded, got %v", entries)
		}
	}
}

func TestTopParticipantsConfiguredTopN(t *testing.T) {
	repo := newFakeRankingRepo(1)
	for i := int64(1); i <= 5; i++ {
		repo.stats = append(repo.stats, AuthorStats{AuthorID: i, RecordCount: i, RecordTime: 100})
		repo.nicknames[i] = "p"
	}
	svc := NewServiceWithConfig(repo, Config{TopN: 3})

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodWeekly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestTopParticipantsUnknownAuthorKept(t *testing.T) {
	repo := newFakeRankingRepo(1)
	repo.stats = []AuthorStats{
		{AuthorID: 1, RecordCount: 4, RecordTime: 800},
		{AuthorID: 2, RecordCount: 1, RecordTime: 100},
	}
	repo.nicknames = map[int64]string{2: "bob"}
	svc := NewService(repo)

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodWeekly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected unresolved authors to stay on the board, got %d entries", len(entries))
	}
	if entries[0].Nickname != UnknownNickname {
		t.Fatalf("expected sentinel nickname, got %q", entries[0].Nickname)
	}
}

func TestTopParticipantsEmptyWindow(t *testing.T) {
	repo := newFakeRankingRepo(1)
	svc := NewService(repo)

	entries, err := svc.TopParticipants(context.Background(), 1, PeriodMonthly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected an empty, non-nil leaderboard, got %v", entries)
	}
}

func TestTopParticipantsMissingGroup(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewService(repo)

	if _, err := svc.TopParticipants(context.Background(), 5, PeriodWeekly); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		value   string
		want    Period
		wantErr error
	}{
		{value: "", want: PeriodWeekly},
		{value: "weekly", want: PeriodWeekly},
		{value: "monthly", want: PeriodMonthly},
		{value: " monthly ", want: PeriodMonthly},
		{value: "daily", wantErr: ErrInvalidPeriod},
		{value: "WEEKLY", wantErr: ErrInvalidPeriod},
	}

	for _, tc := range cases {
		got, err := ParsePeriod(tc.value)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParsePeriod(%q): expected %v, got %v", tc.value, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePeriod(%q): unexpected error %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePeriod(%q): expected %v, got %v", tc.value, tc.want, got)
		}
	}
}
