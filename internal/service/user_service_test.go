package service

import (
	"errors"
	"fmt"
	"testing"

	"twi_edu_backend/internal/model"
	"twi_edu_backend/internal/util"

	"gorm.io/gorm"
)

type fakeUserStore struct {
	users   map[uint]*model.User
	deleted []uint
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[uint]*model.User)}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		// 上层按链断言错误，存储层的包装不能破坏匹配
		return nil, fmt.Errorf("find user %d: %w", id, gorm.ErrRecordNotFound)
	}
	return u, nil
}

func (f *fakeUserStore) FindAll() ([]model.User, error) {
	all := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, *u)
	}
	return all, nil
}

func (f *fakeUserStore) UpdateRole(userID uint, role model.UserRole) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserStore) Delete(userID uint) error {
	delete(f.users, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

func testUser(id uint, role model.UserRole) *model.User {
	u := &model.User{Username: fmt.Sprintf("user-%d", id), Role: role}
	u.ID = id
	return u
}

func TestToggleRole(t *testing.T) {
	svc := NewUserService(newFakeUserStore(
		testUser(1, model.RoleUser),
		testUser(2, model.RoleAdmin),
	))

	role, err := svc.ToggleRole(1)
	if err != nil {
		t.Fatalf("toggle user: %v", err)
	}
	if role != model.RoleAdmin {
		t.Errorf("user should become admin, got %q", role)
	}

	role, err = svc.ToggleRole(2)
	if err != nil {
		t.Fatalf("toggle admin: %v", err)
	}
	if role != model.RoleUser {
		t.Errorf("admin should become user, got %q", role)
	}
}

func TestToggleRoleUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	if _, err := svc.ToggleRole(99); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUser(t *testing.T) {
	store := newFakeUserStore(testUser(1, model.RoleAdmin), testUser(2, model.RoleUser))
	svc := NewUserService(store)

	if err := svc.DeleteUser(1, 1); !errors.Is(err, util.ErrSelfDeletion) {
		t.Errorf("self deletion: got %v, want ErrSelfDeletion", err)
	}
	if len(store.deleted) != 0 {
		t.Error("self deletion must not touch the store")
	}

	if err := svc.DeleteUser(1, 99); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("unknown target: got %v, want ErrUserNotFound", err)
	}

	if err := svc.DeleteUser(1, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 2 {
		t.Errorf("unexpected deletions: %v", store.deleted)
	}
}

func TestGetUserUnknown(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	if _, err := svc.GetUser(5); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}
