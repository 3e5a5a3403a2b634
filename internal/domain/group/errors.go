package group

import "errors"

var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrOwnerNotFound    = errors.New("group owner not found")
	ErrPasswordMismatch = errors.New("owner password mismatch")
	ErrLikeCountAtZero  = errors.New("like count already at zero")
	ErrInvalidOrder     = errors.New("order must be one of createdAt, likeCount, participantCount")
	ErrNameRequired     = errors.New("group name is required")
	ErrInvalidGoalRep   = errors.New("goal rep must be a positive integer")
	ErrOwnerRequired    = errors.New("owner nickname and password are required")
)
