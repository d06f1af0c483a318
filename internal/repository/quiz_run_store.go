package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"twi_edu_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// QuizRunStore 把进行中的测验作为不透明的JSON块存进Redis，
// 每个用户最多一条。状态机本身不关心存储介质。
type QuizRunStore struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewQuizRunStore(rdb *redis.Client, ttl time.Duration) *QuizRunStore {
	return &QuizRunStore{Redis: rdb, TTL: ttl}
}

func runKey(userID uint) string {
	return fmt.Sprintf("quiz:run:%d", userID)
}

// Get 读取用户当前的测验状态，没有时返回 (nil, nil)
func (s *QuizRunStore) Get(ctx context.Context, userID uint) (*model.QuizRun, error) {
	data, err := s.Redis.Get(ctx, runKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var run model.QuizRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// Save 覆盖写入用户当前的测验状态并刷新过期时间
func (s *QuizRunStore) Save(ctx context.Context, userID uint, run *model.QuizRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, runKey(userID), data, s.TTL).Err()
}

// Delete 清除用户当前的测验状态，不存在时也不报错
func (s *QuizRunStore) Delete(ctx context.Context, userID uint) error {
	return s.Redis.Del(ctx, runKey(userID)).Err()
}
