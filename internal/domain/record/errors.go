package record

import "errors"

var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrRecordNotFound      = errors.New("record not found")
	ErrAuthorAuthFailed    = errors.New("author nickname or password mismatch")
	ErrInvalidExerciseType = errors.New("exercise type must be one of run, bike, swim")
	ErrInvalidTime         = errors.New("time must be a positive number of seconds")
	ErrInvalidDistance     = errors.New("distance must not be negative")
	ErrTooManyPhotos       = errors.New("at most 3 photos are allowed")
	ErrInvalidOrder        = errors.New("order must be one of createdAt, time")
)
