package ranking

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrInvalidPeriod = errors.New("duration must be weekly or monthly")
)
