// Package memory - реализация репозиториев в памяти для тестов и локального запуска.
// Повторяет ограничения схемы: уникальность (user_id, property_id) в favorites
// и каскадное удаление зависимых строк.
package memory

import (
	"sync"
	"time"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
)

type Store struct {
	mu sync.RWMutex

	// Now - источник времени для CreatedAt (подменяется в тестах)
	Now func() time.Time

	seq           uint
	users         map[uint]*models.User
	properties    map[uint]*models.Property
	messages      map[uint]*models.Message
	favorites     map[uint]*models.Favorite
	notifications map[uint]*models.Notification
}

func NewStore() *Store {
	return &Store{
		Now:           time.Now,
		users:         make(map[uint]*models.User),
		properties:    make(map[uint]*models.Property),
		messages:      make(map[uint]*models.Message),
		favorites:     make(map[uint]*models.Favorite),
		notifications: make(map[uint]*models.Notification),
	}
}

// Container отдает все репозитории поверх одного Store
func (s *Store) Container() *repositories.Container {
	return &repositories.Container{
		Users:         &UserRepository{s},
		Properties:    &PropertyRepository{s},
		Messages:      &MessageRepository{s},
		Favorites:     &FavoriteRepository{s},
		Notifications: &NotificationRepository{s},
	}
}

// nextID вызывается под s.mu
func (s *Store) nextID() uint {
	s.seq++
	return s.seq
}

func (s *Store) stamp(base *models.BaseModel) {
	base.ID = s.nextID()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = s.Now()
	}
}

// Notifications - снимок всех уведомлений (для проверок в тестах)
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, *n)
	}
	sortByID(out, func(n models.Notification) uint { return n.ID })
	return out
}

// Favorites - снимок всех избранных
func (s *Store) Favorites() []models.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Favorite, 0, len(s.favorites))
	for _, f := range s.favorites {
		out = append(out, *f)
	}
	sortByID(out, func(f models.Favorite) uint { return f.ID })
	return out
}

// Messages - снимок всех сообщений
func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messageList()
}

func (s *Store) messageList() []models.Message {
	out := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, *m)
	}
	sortByID(out, func(m models.Message) uint { return m.ID })
	return out
}

var (
	_ repositories.UserRepository         = (*UserRepository)(nil)
	_ repositories.PropertyRepository     = (*PropertyRepository)(nil)
	_ repositories.MessageRepository      = (*MessageRepository)(nil)
	_ repositories.FavoriteRepository     = (*FavoriteRepository)(nil)
	_ repositories.NotificationRepository = (*NotificationRepository)(nil)
)
