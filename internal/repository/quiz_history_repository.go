package repository

import (
	"twi_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizHistoryRepository struct {
	DB *gorm.DB
}

func NewQuizHistoryRepository(db *gorm.DB) *QuizHistoryRepository {
	return &QuizHistoryRepository{DB: db}
}

func (r *QuizHistoryRepository) Create(record *model.QuizHistory) error {
	return r.DB.Create(record).Error
}

// FindByUsername 某个用户的测验记录，最新的在前
func (r *QuizHistoryRepository) FindByUsername(username string) ([]model.QuizHistory, error) {
	var records []model.QuizHistory
	err := r.DB.Where("username = ?", username).
		Order("date_taken DESC").
		Find(&records).Error
	return records, err
}

// FindAll 全部测验记录，供管理端查看
func (r *QuizHistoryRepository) FindAll() ([]model.QuizHistory, error) {
	var records []model.QuizHistory
	err := r.DB.Order("date_taken DESC").Find(&records).Error
	return records, err
}
