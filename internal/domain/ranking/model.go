package ranking

// UnknownNickname marks entries whose author id no longer resolves to a
// participant. Such entries stay on the board rather than being dropped.
const UnknownNickname = "unknown"

const defaultTopN = 10

type Config struct {
	TopN int
}

// AuthorStats is one aggregated row: how many records an author wrote in
// the window and their summed exercise time in seconds.
type AuthorStats struct {
	AuthorID    int64
	RecordCount int64
	RecordTime  int64
}

type Entry struct {
	ParticipantID int64  `json:"participantId"`
	Nickname      string `json:"nickname"`
	RecordCount   int64  `json:"recordCount"`
	RecordTime    int64  `json:"recordTime"`
}
