package record

import (
	"time"

	"github.com/lib/pq"
)

const (
	ExerciseRun  = "run"
	ExerciseBike = "bike"
	ExerciseSwim = "swim"

	MaxPhotos = 3
)

const (
	OrderByCreatedAt = "createdAt"
	OrderByTime      = "time"
)

type Record struct {
	ID           int64  `gorm:"primaryKey"`
	ExerciseType string `gorm:"not null"`
	Description  string
	Time         int64          `gorm:"not null"`
	Distance     float64        `gorm:"not null"`
	Photos       pq.StringArray `gorm:"type:text[]"`
	AuthorID     *int64         `gorm:"index"`
	GroupID      int64          `gorm:"not null;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

// Author is the participant identity a record is created under.
type Author struct {
	ID       int64
	Nickname string
	Password string
}

// RecordWithAuthor is the read projection. AuthorNickname is nil when the
// author left the group after the record was written.
type RecordWithAuthor struct {
	Record
	AuthorNickname *string
}

type CreateInput struct {
	GroupID        int64
	ExerciseType   string
	Description    string
	Time           int64
	Distance       float64
	Photos         []string
	AuthorNickname string
	AuthorPassword string
}

type ListFilter struct {
	OrderBy string
	Sort    string
	Search  string
	Limit   int
	Offset  int
}
