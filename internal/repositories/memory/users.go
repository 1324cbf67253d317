package memory

import (
	"context"
	"fmt"
	"time"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
)

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	r.s.stamp(&user.BaseModel)
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			u.Name = value.(string)
		case "phone":
			u.Phone = value.(string)
		case "bio":
			u.Bio = value.(string)
		case "photo":
			u.Photo = value.(string)
		case "role":
			u.Role = value.(models.UserRole)
		default:
			return fmt.Errorf("unknown column %q", column)
		}
	}
	u.UpdatedAt = time.Now()
	return nil
}

// DeleteUser удаляет пользователя каскадно (объявления, избранное, сообщения, уведомления)
func (s *Store) DeleteUser(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	for pid, p := range s.properties {
		if p.UserID == id {
			s.deletePropertyLocked(pid)
		}
	}
	for fid, f := range s.favorites {
		if f.UserID == id {
			delete(s.favorites, fid)
		}
	}
	for mid, m := range s.messages {
		if m.SenderID == id || m.ReceiverID == id {
			delete(s.messages, mid)
		}
	}
	for nid, n := range s.notifications {
		if n.UserID == id {
			delete(s.notifications, nid)
		}
	}
}
