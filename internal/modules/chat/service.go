package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"gorm.io/gorm"
)

type notifier interface {
	Push(ctx context.Context, userID, kind, title, body string) error
}

type Service struct {
	chats    *repository.ChatRepository
	users    *repository.UserRepository
	profiles *repository.ProfileRepository
	hub      *Hub
	notify   notifier
}

func NewService(chats *repository.ChatRepository, users *repository.UserRepository, profiles *repository.ProfileRepository, hub *Hub, notify notifier) *Service {
	return &Service{chats: chats, users: users, profiles: profiles, hub: hub, notify: notify}
}

// GetOrCreateThread finds the conversation between the sender and the
// recipient, creating it on first contact. The participant pair is stored
// sorted, so either side reaches the same thread.
func (s *Service) GetOrCreateThread(ctx context.Context, senderID string, req CreateThreadRequest) (*domain.ChatThread, *domain.ChatMessage, error) {
	if senderID == req.RecipientID {
		return nil, nil, ErrCannotMessageSelf
	}
	if _, err := s.users.GetByID(ctx, req.RecipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRecipientNotFound
		}
		return nil, nil, fmt.Errorf("load recipient: %w", err)
	}

	a, b := senderID, req.RecipientID
	if a > b {
		a, b = b, a
	}

	thread, err := s.chats.GetThreadByParticipants(ctx, a, b)
	if err != nil {
		return nil, nil, err
	}
	if thread == nil {
		thread = &domain.ChatThread{ParticipantA: a, ParticipantB: b, EventID: req.EventID}
		if err := s.chats.CreateThread(ctx, thread); err != nil {
			return nil, nil, fmt.Errorf("create thread: %w", err)
		}
	}

	var initial *domain.ChatMessage
	if strings.TrimSpace(req.InitialMessage) != "" {
		initial, err = s.SendMessage(ctx, senderID, thread.ID, req.InitialMessage)
		if err != nil {
			return nil, nil, err
		}
	}
	return thread, initial, nil
}

// ListThreads returns the user's inbox, newest activity first, with the
// counterpart profile, last message and unread count filled in.
func (s *Service) ListThreads(ctx context.Context, userID string, limit, offset int) ([]domain.ChatThread, error) {
	threads, err := s.chats.GetUserThreads(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		t := &threads[i]
		otherID := t.ParticipantA
		if otherID == userID {
			otherID = t.ParticipantB
		}
		if p, err := s.profiles.GetByUserID(ctx, otherID); err == nil {
			t.Other = p
		}
		if last, err := s.chats.LastMessage(ctx, t.ID); err == nil {
			t.LastMessage = last
		}
		if unread, err := s.chats.CountUnread(ctx, t.ID, userID); err == nil {
			t.UnreadCount = unread
		}
	}
	return threads, nil
}

func (s *Service) Messages(ctx context.Context, userID, threadID string, limit, offset int) ([]domain.ChatMessage, error) {
	if _, err := s.threadFor(ctx, userID, threadID); err != nil {
		return nil, err
	}
	return s.chats.GetMessages(ctx, threadID, limit, offset)
}

// SendMessage persists the message, pushes it to both live connections
// and falls back to an in-app notification for an offline recipient.
func (s *Service) SendMessage(ctx context.Context, senderID, threadID, content string) (*domain.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	thread, err := s.threadFor(ctx, senderID, threadID)
	if err != nil {
		return nil, err
	}

	m := &domain.ChatMessage{ThreadID: threadID, SenderID: senderID, Content: content}
	if err := s.chats.CreateMessage(ctx, m); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	recipientID := thread.ParticipantA
	if recipientID == senderID {
		recipientID = thread.ParticipantB
	}

	delivered := false
	if s.hub != nil {
		payload := WSServerMessage{Type: "message", Message: m}
		_ = s.hub.SendToUser(senderID, payload)
		delivered = s.hub.SendToUser(recipientID, payload)
	}
	if !delivered && s.notify != nil {
		if err := s.notify.Push(ctx, recipientID, "chat_message", "New message", content); err != nil {
			log.Printf("notify user_id=%s kind=chat_message error=%v", recipientID, err)
		}
	}
	return m, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, threadID string) error {
	if _, err := s.threadFor(ctx, userID, threadID); err != nil {
		return err
	}
	return s.chats.MarkRead(ctx, threadID, userID)
}

func (s *Service) threadFor(ctx context.Context, userID, threadID string) (*domain.ChatThread, error) {
	thread, err := s.chats.GetThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	if !thread.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return thread, nil
}
