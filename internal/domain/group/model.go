package group

import (
	"time"

	"github.com/lib/pq"
)

const (
	OrderByCreatedAt        = "createdAt"
	OrderByLikeCount        = "likeCount"
	OrderByParticipantCount = "participantCount"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type Group struct {
	ID                int64  `gorm:"primaryKey"`
	Name              string `gorm:"not null"`
	Description       string
	PhotoURL          *string
	GoalRep           int            `gorm:"not null"`
	Tags              pq.StringArray `gorm:"type:text[]"`
	DiscordWebhookURL *string
	DiscordInviteURL  *string
	LikeCount         int64          `gorm:"not null;default:0"`
	Badges            pq.StringArray `gorm:"type:text[]"`
	OwnerID           *int64         `gorm:"index"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

// Owner is the participant a group's owner_id points at. Groups are
// created owner-less and linked to their owner in a second write, so the
// reference is nullable.
type Owner struct {
	ID       int64
	Nickname string
	Password string
}

// GroupWithStats carries the list/detail projection: the group plus its
// live participant count and the owner's nickname when linked.
type GroupWithStats struct {
	Group
	ParticipantCount int64
	OwnerNickname    *string
}

type ListFilter struct {
	OrderBy string
	Sort    string
	Limit   int
	Offset  int
}

type CreateInput struct {
	Name              string
	Description       string
	PhotoURL          *string
	GoalRep           int
	Tags              []string
	DiscordWebhookURL *string
	DiscordInviteURL  *string
	OwnerNickname     string
	OwnerPassword     string
}

type UpdateInput struct {
	ID                int64
	Name              string
	Description       string
	PhotoURL          *string
	GoalRep           int
	Tags              []string
	DiscordWebhookURL *string
	DiscordInviteURL  *string
	OwnerPassword     string
}

// LikeResult is the acknowledgment returned by the like endpoints.
type LikeResult struct {
	ID        int64 `json:"id"`
	LikeCount int64 `json:"likeCount"`
}
