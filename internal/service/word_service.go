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

type WordService struct {
	Repo    *repository.WordRepository
	Storage *StorageService
}

func NewWordService(repo *repository.WordRepository, storage *StorageService) *WordService {
	return &WordService{Repo: repo, Storage: storage}
}

// ListWords 词典主列表，字母序
func (s *WordService) ListWords() ([]model.Word, error) {
	return s.Repo.FindAllOrdered()
}

// SearchWords 模糊搜索，若有完全相同的词条则排到最前面
func (s *WordService) SearchWords(keyword string) ([]model.Word, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.Repo.FindAllOrdered()
	}

	results, err := s.Repo.Search(keyword)
	if err != nil {
		return nil, err
	}
	return rankSearchResults(results, keyword), nil
}

// rankSearchResults 把与搜索词完全一致（忽略大小写）的词条移到最前
func rankSearchResults(words []model.Word, keyword string) []model.Word {
	lowered := strings.ToLower(keyword)

	ranked := make([]model.Word, 0, len(words))
	var rest []model.Word
	for _, w := range words {
		if strings.ToLower(w.Word) == lowered {
			ranked = append(ranked, w)
		} else {
			rest = append(rest, w)
		}
	}
	return append(ranked, rest...)
}

func (s *WordService) GetWord(id uint) (*model.Word, error) {
	word, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWordNotFound
	}
	return word, err
}

func (s *WordService) CreateWord(word *model.Word) error {
	word.Word = strings.TrimSpace(word.Word)
	word.Definition = strings.TrimSpace(word.Definition)
	if word.Word == "" || word.Definition == "" {
		return errors.New("word and definition are required")
	}
	return s.Repo.Create(word)
}

func (s *WordService) UpdateWord(id uint, updated *model.Word) (*model.Word, error) {
	word, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	word.Pronunciation = strings.TrimSpace(updated.Pronunciation)
	word.PartOfSpeech = strings.TrimSpace(updated.PartOfSpeech)
	word.Definition = strings.TrimSpace(updated.Definition)
	word.Example = strings.TrimSpace(updated.Example)
	if updated.AudioFile != "" {
		word.AudioFile = strings.TrimSpace(updated.AudioFile)
	}

	if err := s.Repo.Update(word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *WordService) DeleteWord(id uint) error {
	return s.Repo.Delete(id)
}

// AttachAudio 上传词条发音音频：校验扩展名和MIME，ffmpeg探测确认
// 确实是音频流，再交给存储后端，对象名用UUID避免覆盖
func (s *WordService) AttachAudio(ctx context.Context, wordID uint, fileHeader *multipart.FileHeader) (*model.Word, error) {
	word, err := s.Repo.FindByID(wordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.UploadAudio(ctx, fileHeader)
	if err != nil {
		return nil, err
	}

	word.AudioFile = url
	if err := s.Repo.Update(word); err != nil {
		return nil, err
	}
	return word, nil
}
