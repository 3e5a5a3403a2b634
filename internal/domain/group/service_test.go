package group

import (
	"context"
	"errors"
	"testing"
)

type fakeGroupRepo struct {
	groups  map[int64]*Group
	owners  map[int64]*Owner
	nextID  int64
	ownerID int64
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups: make(map[int64]*Group),
		owners: make(map[int64]*Owner),
	}
}

func (r *fakeGroupRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeGroupRepo) List(ctx context.Context, filter ListFilter) ([]GroupWithStats, int64, error) {
	result := make([]GroupWithStats, 0, len(r.groups))
	for _, g := range r.groups {
		result = append(result, GroupWithStats{Group: *g})
	}
	return result, int64(len(result)), nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id int64) (*Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGroupRepo) GetWithStats(ctx context.Context, id int64) (*GroupWithStats, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return &GroupWithStats{Group: *g}, nil
}

func (r *fakeGroupRepo) Create(ctx context.Context, g *Group) error {
	r.nextID++
	g.ID = r.nextID
	r.groups[g.ID] = g
	return nil
}

func (r *fakeGroupRepo) Update(ctx context.Context, g *Group) error {
	stored, ok := r.groups[g.ID]
	if !ok {
		return ErrGroupNotFound
	}
	stored.Name = g.Name
	stored.Description = g.Description
	stored.PhotoURL = g.PhotoURL
	stored.GoalRep = g.GoalRep
	stored.Tags = g.Tags
	stored.DiscordWebhookURL = g.DiscordWebhookURL
	stored.DiscordInviteURL = g.DiscordInviteURL
	stored.UpdatedAt = g.UpdatedAt
	return nil
}

func (r *fakeGroupRepo) Delete(ctx context.Context, id int64) error {
	delete(r.groups, id)
	return nil
}

func (r *fakeGroupRepo) CreateOwner(ctx context.Context, groupID int64, nickname, password string) (*Owner, error) {
	r.ownerID++
	owner := &Owner{ID: r.ownerID, Nickname: nickname, Password: password}
	r.owners[groupID] = owner
	return owner, nil
}

func (r *fakeGroupRepo) SetOwner(ctx context.Context, groupID, ownerID int64) error {
	g, ok := r.groups[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	g.OwnerID = &ownerID
	return nil
}

func (r *fakeGroupRepo) GetOwner(ctx context.Context, groupID int64) (*Owner, error) {
	owner, ok := r.owners[groupID]
	if !ok {
		return nil, ErrOwnerNotFound
	}
	return owner, nil
}

func (r *fakeGroupRepo) IncrementLikeCount(ctx context.Context, id int64) (int64, error) {
	g, ok := r.groups[id]
	if !ok {
		return 0, ErrGroupNotFound
	}
	g.LikeCount++
	return g.LikeCount, nil
}

func (r *fakeGroupRepo) DecrementLikeCount(ctx context.Context, id int64) (int64, bool, error) {
	g, ok := r.groups[id]
	if !ok {
		return 0, false, ErrGroupNotFound
	}
	if g.LikeCount == 0 {
		return 0, false, nil
	}
	g.LikeCount--
	return g.LikeCount, true, nil
}

type fakeBadgeRefresher struct {
	refreshed []int64
}

func (f *fakeBadgeRefresher) Refresh(ctx context.Context, groupID int64) {
	f.refreshed = append(f.refreshed, groupID)
}

func seedGroup(repo *fakeGroupRepo, likeCount int64) *Group {
	g := &Group{Name: "morning run crew", GoalRep: 100, LikeCount: likeCount}
	_ = repo.Create(context.Background(), g)
	repo.owners[g.ID] = &Owner{ID: 99, Nickname: "captain", Password: "pw1234"}
	return g
}

func TestLikeRoundTrip(t *testing.T) {
	repo := newFakeGroupRepo()
	badges := &fakeBadgeRefresher{}
	svc := NewService(repo, badges)
	g := seedGroup(repo, 5)

	up, err := svc.IncrementLike(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if up.LikeCount != 6 {
		t.Fatalf("expected like count 6, got %d", up.LikeCount)
	}

	down, err := svc.DecrementLike(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if down.LikeCount != 5 {
		t.Fatalf("expected like count back to 5, got %d", down.LikeCount)
	}

	if len(badges.refreshed) != 2 {
		t.Fatalf("expected badge refresh after each like mutation, got %d", len(badges.refreshed))
	}
}

func TestDecrementLikeAtZeroFails(t *testing.T) {
	repo := newFakeGroupRepo()
	badges := &fakeBadgeRefresher{}
	svc := NewService(repo, badges)
	g := seedGroup(repo, 0)

	_, err := svc.DecrementLike(context.Background(), g.ID)
	if !errors.Is(err, ErrLikeCountAtZero) {
		t.Fatalf("expected ErrLikeCountAtZero, got %v", err)
	}
	if repo.groups[g.ID].LikeCount != 0 {
		t.Fatalf("expected like count unchanged at 0, got %d", repo.groups[g.ID].LikeCount)
	}
	if len(badges.refreshed) != 0 {
		t.Fatalf("expected no badge refresh on failed decrement")
	}
}

func TestIncrementLikeMissingGroup(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewService(repo, &fakeBadgeRefresher{})

	if _, err := svc.IncrementLike(context.Background(), 404); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestCreateGroupLinksOwner(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewService(repo, &fakeBadgeRefresher{})

	created, err := svc.Create(context.Background(), CreateInput{
		Name:          "evening riders",
		GoalRep:       50,
		OwnerNickname: "captain",
		OwnerPassword: "pw1234",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.OwnerID == nil {
		t.Fatalf("expected owner linked after two-phase create")
	}

	owner := repo.owners[created.ID]
	if owner == nil || owner.ID != *created.OwnerID {
		t.Fatalf("expected group owner reference to point at the created participant")
	}
}

func TestCreateGroupValidation(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewService(repo, &fakeBadgeRefresher{})

	cases := []struct {
		name    string
		input   CreateInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   CreateInput{GoalRep: 10, OwnerNickname: "a", OwnerPassword: "b"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "non-positive goal rep",
			input:   CreateInput{Name: "crew", GoalRep: 0, OwnerNickname: "a", OwnerPassword: "b"},
			wantErr: ErrInvalidGoalRep,
		},
		{
			name:    "missing owner",
			input:   CreateInput{Name: "crew", GoalRep: 10},
			wantErr: ErrOwnerRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdateGroupWrongPassword(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewService(repo, &fakeBadgeRefresher{})
	g := seedGroup(repo, 0)

	_, err := svc.Update(context.Background(), UpdateInput{
		ID:            g.ID,
		Name:          "renamed",
		GoalRep:       10,
		OwnerPassword: "wrong",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

// likeDuringUpdateRepo lands a like on the stored row right after each
// read, simulating an increment committing between the update's snapshot
// and its write.
type likeDuringUpdateRepo struct {
	*fakeGroupRepo
}

func (r *likeDuringUpdateRepo) GetByID(ctx context.Context, id int64) (*Group, error) {
	g, err := r.fakeGroupRepo.GetByID(ctx, id)
	if err == nil {
		r.groups[id].LikeCount++
	}
	return g, err
}

func TestUpdateGroupKeepsConcurrentLikesAndBadges(t *testing.T) {
	base := newFakeGroupRepo()
	svc := NewService(&likeDuringUpdateRepo{fakeGroupRepo: base}, &fakeBadgeRefresher{})
	g := seedGroup(base, 5)
	base.groups[g.ID].Badges = []string{"LIKE_100"}

	likesBefore := base.groups[g.ID].LikeCount

	_, err := svc.Update(context.Background(), UpdateInput{
		ID:            g.ID,
		Name:          "renamed",
		GoalRep:       25,
		OwnerPassword: "pw1234",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stored := base.groups[g.ID]
	if stored.Name != "renamed" || stored.GoalRep != 25 {
		t.Fatalf("expected editable fields written, got %+v", stored)
	}
	if stored.LikeCount <= likesBefore {
		t.Fatalf("expected concurrent likes to survive the update, got %d", stored.LikeCount)
	}
	if len(stored.Badges) != 1 || stored.Badges[0] != "LIKE_100" {
		t.Fatalf("expected badges untouched by the update, got %v", stored.Badges)
	}
}

// deleteDuringLikeRepo drops the group right after the existence read, so
// the decrement hits a row that no longer exists.
type deleteDuringLikeRepo struct {
	*fakeGroupRepo
}

func (r *deleteDuringLikeRepo) GetByID(ctx context.Context, id int64) (*Group, error) {
	g, err := r.fakeGroupRepo.GetByID(ctx, id)
	if err == nil {
		delete(r.groups, id)
	}
	return g, err
}

func TestDecrementLikeVanishedGroupIsNotFound(t *testing.T) {
	base := newFakeGroupRepo()
	svc := NewService(&deleteDuringLikeRepo{fakeGroupRepo: base}, &fakeBadgeRefresher{})
	g := seedGroup(base, 3)

	_, err := svc.DecrementLike(context.Background(), g.ID)
	if !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound for a vanished group, got %v", err)
	}
}

func TestDeleteGroupRequiresOwnerPassword(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewService(repo, &fakeBadgeRefresher{})
	g := seedGroup(repo, 0)

	if err := svc.Delete(context.Background(), g.ID, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if err := svc.Delete(context.Background(), g.ID, "pw1234"); err != nil {
		t.Fatalf("expected delete with correct password, got %v", err)
	}
	if _, ok := repo.groups[g.ID]; ok {
		t.Fatalf("expected group removed")
	}
}

func TestListRejectsUnknownOrder(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := NewService(repo, &fakeBadgeRefresher{})

	if _, _, err := svc.List(context.Background(), ListFilter{OrderBy: "badges"}); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}
