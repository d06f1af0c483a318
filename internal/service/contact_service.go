package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/repository"
	"twi_edu_backend/internal/util"
	"twi_edu_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const unreadCountKey = "contact:unread_count"

// ContactService 联系表单留言和管理端收件箱。
// 未读数走Redis短缓存，新留言和标记已读都会让缓存失效。
type ContactService struct {
	Repo  *repository.ContactMessageRepository
	Redis *redis.Client
}

func NewContactService(repo *repository.ContactMessageRepository, rdb *redis.Client) *ContactService {
	return &ContactService{Repo: repo, Redis: rdb}
}

// Submit 提交一条留言，三个字段都必填
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return nil, errors.New("all fields are required")
	}

	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}

	s.invalidateUnreadCount(ctx)
	return msg, nil
}

func (s *ContactService) List() ([]model.ContactMessage, error) {
	return s.Repo.FindAll()
}

func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMessageNotFound
		}
		return err
	}

	if err := s.Repo.MarkRead(id); err != nil {
		return err
	}

	s.invalidateUnreadCount(ctx)
	return nil
}

// UnreadCount 未读留言数，30秒Redis缓存
func (s *ContactService) UnreadCount(ctx context.Context) (int64, error) {
	cached, err := s.Redis.Get(ctx, unreadCountKey).Result()
	if err == nil {
		if count, perr := strconv.ParseInt(cached, 10, 64); perr == nil {
			return count, nil
		}
	}

	count, err := s.Repo.CountUnread()
	if err != nil {
		return 0, err
	}

	if err := s.Redis.Set(ctx, unreadCountKey, strconv.FormatInt(count, 10), 30*time.Second).Err(); err != nil {
		logger.Log.Warn("Failed to cache unread count", zap.Error(err))
	}
	return count, nil
}

func (s *ContactService) invalidateUnreadCount(ctx context.Context) {
	if err := s.Redis.Del(ctx, unreadCountKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate unread count cache", zap.Error(err))
	}
}
