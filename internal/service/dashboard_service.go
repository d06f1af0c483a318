package service

import (
	"errors"
	"time"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/repository"
	"twi_edu_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardService 学习面板：每日一词和历史上的每日一词
type DashboardService struct {
	WordRepo *repository.WordRepository
	WOTDRepo *repository.WordOfTheDayRepository
}

func NewDashboardService(wordRepo *repository.WordRepository, wotdRepo *repository.WordOfTheDayRepository) *DashboardService {
	return &DashboardService{
		WordRepo: wordRepo,
		WOTDRepo: wotdRepo,
	}
}

type Dashboard struct {
	TodayWord *model.WordOfTheDay  `json:"todayWord"`
	History   []model.WordOfTheDay `json:"history"`
}

// GetDashboard 返回今天的每日一词和历史记录。当天还没有选词时
// 从词典随机抽一个并固化成当天的记录；词典为空则 TodayWord 为 nil。
func (s *DashboardService) GetDashboard() (*Dashboard, error) {
	today, err := s.todayWord()
	if err != nil {
		return nil, err
	}

	history, err := s.WOTDRepo.History()
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TodayWord: today,
		History:   history,
	}, nil
}

func (s *DashboardService) todayWord() (*model.WordOfTheDay, error) {
	now := time.Now()
	entry, err := s.WOTDRepo.FindByDate(now)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	word, err := s.WordRepo.Random()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 词典还是空的，面板上暂时没有每日一词
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry = &model.WordOfTheDay{
		Word:          word.Word,
		Pronunciation: word.Pronunciation,
		PartOfSpeech:  word.PartOfSpeech,
		Definition:    word.Definition,
		Example:       word.Example,
		AudioFile:     word.AudioFile,
		DateSelected:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	if err := s.WOTDRepo.Create(entry); err != nil {
		// 并发请求撞上当天的唯一索引时，读已经写进去的那条
		existing, ferr := s.WOTDRepo.FindByDate(now)
		if ferr == nil {
			return existing, nil
		}
		logger.Log.Error("Failed to persist word of the day", zap.Error(err))
		return nil, err
	}

	return entry, nil
}
