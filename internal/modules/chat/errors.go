package chat

import "errors"

var (
	ErrThreadNotFound    = errors.New("conversation not found")
	ErrNotParticipant    = errors.New("you are not a participant of this conversation")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrEmptyContent      = errors.New("message content cannot be empty")
	ErrCannotMessageSelf = errors.New("cannot send message to yourself")
)
