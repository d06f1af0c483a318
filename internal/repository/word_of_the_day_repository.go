package repository

import (
	"time"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/util"

	"gorm.io/gorm"
)

type WordOfTheDayRepository struct {
	DB *gorm.DB
}

func NewWordOfTheDayRepository(db *gorm.DB) *WordOfTheDayRepository {
	return &WordOfTheDayRepository{DB: db}
}

// FindByDate 查某一天的每日一词，没有则返回 gorm.ErrRecordNotFound
func (r *WordOfTheDayRepository) FindByDate(day time.Time) (*model.WordOfTheDay, error) {
	var entry model.WordOfTheDay
	err := r.DB.Where("date_selected = ?", day.Format(util.DateFormat)).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WordOfTheDayRepository) Create(entry *model.WordOfTheDay) error {
	return r.DB.Create(entry).Error
}

// History 按日期倒序返回全部每日一词记录
func (r *WordOfTheDayRepository) History() ([]model.WordOfTheDay, error) {
	var entries []model.WordOfTheDay
	err := r.DB.Order("date_selected DESC").Find(&entries).Error
	return entries, err
}
