package repository

import (
	"twi_edu_backend/internal/model"

	"gorm.io/gorm"
)

type WordRepository struct {
	DB *gorm.DB
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{DB: db}
}

func (r *WordRepository) Create(word *model.Word) error {
	return r.DB.Create(word).Error
}

func (r *WordRepository) FindByID(id uint) (*model.Word, error) {
	var word model.Word
	err := r.DB.First(&word, id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// FindAllOrdered 按词条字母序返回全部词条，用于词典主列表
func (r *WordRepository) FindAllOrdered() ([]model.Word, error) {
	var words []model.Word
	err := r.DB.Order("word ASC").Find(&words).Error
	return words, err
}

// Search 模糊匹配词条，utf8mb4 默认排序规则下不区分大小写
func (r *WordRepository) Search(keyword string) ([]model.Word, error) {
	var words []model.Word
	err := r.DB.Where("word LIKE ?", "%"+keyword+"%").
		Order("word ASC").
		Find(&words).Error
	return words, err
}

// Random 随机取一个词条，用于生成每日一词
func (r *WordRepository) Random() (*model.Word, error) {
	var word model.Word
	err := r.DB.Order("RAND()").First(&word).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *WordRepository) Update(word *model.Word) error {
	return r.DB.Model(word).Updates(word).Error
}

func (r *WordRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Word{}, id).Error
}

func (r *WordRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Word{}).Count(&count).Error
	return count, err
}
