package badge

import "sort"

// Badge codes a group can hold. Badges mirror the group's current
// counters: a group that drops back under a threshold loses the badge.
const (
	ParticipantTen = "PARTICIPANT_10"
	RecordHundred  = "RECORD_100"
	LikeHundred    = "LIKE_100"
)

const (
	participantThreshold = 10
	recordThreshold      = 100
	likeThreshold        = 100
)

// GroupState is the slice of a group the evaluator reads.
type GroupState struct {
	ID        int64
	LikeCount int64
	Badges    []string
}

// Result reports whether an evaluation wrote a new badge set.
type Result struct {
	Updated bool
	Badges  []string
}

type badgeSet map[string]struct{}

func newBadgeSet(badges []string) badgeSet {
	set := make(badgeSet, len(badges))
	for _, b := range badges {
		set[b] = struct{}{}
	}
	return set
}

func (s badgeSet) apply(code string, qualifies bool) {
	if qualifies {
		s[code] = struct{}{}
		return
	}
	delete(s, code)
}

func (s badgeSet) values() []string {
	values := make([]string, 0, len(s))
	for b := range s {
		values = append(values, b)
	}
	sort.Strings(values)
	return values
}

func (s badgeSet) equals(badges []string) bool {
	other := newBadgeSet(badges)
	if len(s) != len(other) {
		return false
	}
	for b := range s {
		if _, ok := other[b]; !ok {
			return false
		}
	}
	return true
}
