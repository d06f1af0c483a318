package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/repository"
	"twi_edu_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService 题库维护和选题页数据
type QuestionService struct {
	Repo    *repository.QuizQuestionRepository
	Storage *StorageService
}

func NewQuestionService(repo *repository.QuizQuestionRepository, storage *StorageService) *QuestionService {
	return &QuestionService{Repo: repo, Storage: storage}
}

// ListTopics 选题页：全部类别、题目数、是否带音频
func (s *QuestionService) ListTopics() ([]repository.TopicSummary, error) {
	return s.Repo.ListTopics()
}

func (s *QuestionService) ListByCategory(category string) ([]model.QuizQuestion, error) {
	return s.Repo.FindByCategory(category)
}

func (s *QuestionService) CreateQuestion(q *model.QuizQuestion) error {
	q.Category = strings.TrimSpace(q.Category)
	q.Question = strings.TrimSpace(q.Question)
	if q.Category == "" || q.Question == "" {
		return errors.New("category and question are required")
	}
	if q.OptionA == "" || q.OptionB == "" || q.OptionC == "" || q.OptionD == "" {
		return errors.New("all four options are required")
	}

	q.CorrectOption = strings.ToUpper(strings.TrimSpace(q.CorrectOption))
	switch q.CorrectOption {
	case "A", "B", "C", "D":
	default:
		// 与答题端的回退策略保持一致
		q.CorrectOption = util.CorrectOptionFallback
	}

	return s.Repo.Create(q)
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}

// AttachAudio 给题目挂一段音频，流程与词条音频一致
func (s *QuestionService) AttachAudio(ctx context.Context, questionID uint, fileHeader *multipart.FileHeader) (*model.QuizQuestion, error) {
	question, err := s.Repo.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.UploadAudio(ctx, fileHeader)
	if err != nil {
		return nil, err
	}

	question.AudioFile = url
	if err := s.Repo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}
