package repository

import (
	"context"
	"errors"
	"time"

	"localguide/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetThreadByParticipants expects participantA < participantB (callers
// sort). The pair carries a unique index, so the lookup never filters on
// anything else: one thread per pair, whatever page it was opened from.
func (r *ChatRepository) GetThreadByParticipants(ctx context.Context, participantA, participantB string) (*domain.ChatThread, error) {
	q := r.db.WithContext(ctx).Where("participant_a = ? AND participant_b = ?", participantA, participantB)
	var thread domain.ChatThread
	if err := q.First(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &thread, nil
}

func (r *ChatRepository) CreateThread(ctx context.Context, t *domain.ChatThread) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ChatRepository) GetThreadByID(ctx context.Context, id string) (*domain.ChatThread, error) {
	var thread domain.ChatThread
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&thread).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *ChatRepository) GetUserThreads(ctx context.Context, userID string, limit, offset int) ([]domain.ChatThread, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var threads []domain.ChatThread
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("updated_at desc").
		Limit(limit).Offset(offset).
		Find(&threads).Error
	return threads, err
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	// bump the thread so it sorts to the top of the inbox
	return r.db.WithContext(ctx).Model(&domain.ChatThread{}).
		Where("id = ?", m.ThreadID).
		Update("updated_at", time.Now()).Error
}

func (r *ChatRepository) GetMessages(ctx context.Context, threadID string, limit, offset int) ([]domain.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at asc").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *ChatRepository) LastMessage(ctx context.Context, threadID string) (*domain.ChatMessage, error) {
	var m domain.ChatMessage
	err := r.db.WithContext(ctx).Where("thread_id = ?", threadID).Order("created_at desc").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *ChatRepository) MarkRead(ctx context.Context, threadID, readerID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.ChatMessage{}).
		Where("thread_id = ? AND sender_id <> ? AND read_at IS NULL", threadID, readerID).
		Update("read_at", now).Error
}

func (r *ChatRepository) CountUnread(ctx context.Context, threadID, readerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).
		Where("thread_id = ? AND sender_id <> ? AND read_at IS NULL", threadID, readerID).
		Count(&count).Error
	return count, err
}
