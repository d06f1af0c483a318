package service

import (
	"time"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/repository"
	"twi_edu_backend/pkg/logger"
	"twi_edu_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// QuizHistoryService 测验历史：完成一局写一条不可变记录。
// 写入失败只记日志并返回 false，绝不把错误抛给完成流程。
type QuizHistoryService struct {
	Repo *repository.QuizHistoryRepository
}

func NewQuizHistoryService(repo *repository.QuizHistoryRepository) *QuizHistoryService {
	return &QuizHistoryService{Repo: repo}
}

// RecordResult 追加一条完成记录，时间戳由服务端生成
func (s *QuizHistoryService) RecordResult(username, category string, score, total, elapsedSeconds int) bool {
	record := &model.QuizHistory{
		Username:       username,
		Category:       category,
		Score:          score,
		TotalQuestions: total,
		TimeTaken:      elapsedSeconds,
		DateTaken:      time.Now(),
	}

	if err := s.Repo.Create(record); err != nil {
		logger.Log.Error("Failed to record quiz history",
			zap.String("username", username),
			zap.String("category", category),
			zap.Int("score", score),
			zap.Int("total", total),
			zap.Error(err))
		monitoring.QuizHistoryWriteFailures.Inc()
		return false
	}
	return true
}

// UserHistory 某个用户自己的测验记录，最新的在前
func (s *QuizHistoryService) UserHistory(username string) ([]model.QuizHistory, error) {
	return s.Repo.FindByUsername(username)
}

// AllHistory 全部测验记录，管理端用
func (s *QuizHistoryService) AllHistory() ([]model.QuizHistory, error) {
	return s.Repo.FindAll()
}
