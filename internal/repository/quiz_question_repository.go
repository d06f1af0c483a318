package repository

import (
	"twi_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizQuestionRepository struct {
	DB *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) *QuizQuestionRepository {
	return &QuizQuestionRepository{DB: db}
}

// TopicSummary 题目选择页需要的类别概览
type TopicSummary struct {
	Category      string `json:"category"`
	QuestionCount int    `json:"questionCount"`
	HasAudio      bool   `json:"hasAudio"`
}

// FindByCategory 按ID顺序返回某类别的全部题目。
// 类别不存在时返回空切片而不是错误，由调用方决定如何处理。
func (r *QuizQuestionRepository) FindByCategory(category string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("category = ?", category).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// ListTopics 返回全部类别及题目数量和是否带音频
func (r *QuizQuestionRepository) ListTopics() ([]TopicSummary, error) {
	var rows []struct {
		Category      string
		QuestionCount int
		AudioCount    int
	}
	err := r.DB.Model(&model.QuizQuestion{}).
		Select("category, COUNT(*) AS question_count, SUM(audio_file IS NOT NULL AND audio_file <> '') AS audio_count").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	topics := make([]TopicSummary, 0, len(rows))
	for _, row := range rows {
		topics = append(topics, TopicSummary{
			Category:      row.Category,
			QuestionCount: row.QuestionCount,
			HasAudio:      row.AudioCount > 0,
		})
	}
	return topics, nil
}

func (r *QuizQuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuizQuestionRepository) Create(question *model.QuizQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QuizQuestionRepository) Update(question *model.QuizQuestion) error {
	return r.DB.Model(question).Updates(question).Error
}

func (r *QuizQuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.QuizQuestion{}, id).Error
}
