package service

import (
	"errors"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/util"

	"gorm.io/gorm"
)

// UserStore 用户管理需要的存储操作，查不到时返回
// gorm.ErrRecordNotFound（可能被包装）
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindAll() ([]model.User, error)
	UpdateRole(userID uint, role model.UserRole) error
	Delete(userID uint) error
}

type UserService struct {
	Repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.Repo.FindAll()
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// ToggleRole 普通用户和管理员之间来回切换
func (s *UserService) ToggleRole(userID uint) (model.UserRole, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrUserNotFound
		}
		return "", err
	}

	newRole := model.RoleAdmin
	if user.Role == model.RoleAdmin {
		newRole = model.RoleUser
	}

	if err := s.Repo.UpdateRole(userID, newRole); err != nil {
		return "", err
	}
	return newRole, nil
}

// DeleteUser 删除用户，不允许删掉自己
func (s *UserService) DeleteUser(actorID, targetID uint) error {
	if actorID == targetID {
		return util.ErrSelfDeletion
	}

	if _, err := s.Repo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	return s.Repo.Delete(targetID)
}
