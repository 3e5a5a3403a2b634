package participant

import "errors"

var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNicknameTaken       = errors.New("nickname already taken in this group")
	ErrNicknameRequired    = errors.New("nickname is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordMismatch    = errors.New("password mismatch")
)
