package participant

import "time"

type Participant struct {
	ID        int64     `gorm:"primaryKey"`
	Nickname  string    `gorm:"not null;uniqueIndex:ux_participants_group_nickname"`
	Password  string    `gorm:"not null"`
	GroupID   int64     `gorm:"not null;index;uniqueIndex:ux_participants_group_nickname"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type JoinInput struct {
	GroupID  int64
	Nickname string
	Password string
}

type LeaveInput struct {
	GroupID  int64
	Nickname string
	Password string
}
