package repository

import (
	"twi_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ContactMessageRepository struct {
	DB *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{DB: db}
}

func (r *ContactMessageRepository) Create(message *model.ContactMessage) error {
	return r.DB.Create(message).Error
}

// FindAll 全部留言，最新的在前
func (r *ContactMessageRepository) FindAll() ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	err := r.DB.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *ContactMessageRepository) FindByID(id string) (*model.ContactMessage, error) {
	var message model.ContactMessage
	err := r.DB.Where("id = ?", id).First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *ContactMessageRepository) MarkRead(id string) error {
	return r.DB.Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *ContactMessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.DB.Model(&model.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
