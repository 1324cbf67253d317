package memory

import (
	"context"
	"sort"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
)

type FavoriteRepository struct{ s *Store }

// Create проверяет уникальность пары под той же блокировкой, что и вставку -
// аналог уникального индекса idx_favorites_user_property
func (r *FavoriteRepository) Create(_ context.Context, favorite *models.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[favorite.UserID]; !ok {
		return repositories.ErrUserNotFound
	}
	if _, ok := r.s.properties[favorite.PropertyID]; !ok {
		return repositories.ErrPropertyNotFound
	}
	for _, f := range r.s.favorites {
		if f.UserID == favorite.UserID && f.PropertyID == favorite.PropertyID {
			return repositories.ErrFavoriteExists
		}
	}
	r.s.stamp(&favorite.BaseModel)
	cp := *favorite
	cp.Property = nil
	r.s.favorites[favorite.ID] = &cp
	return nil
}

func (r *FavoriteRepository) Exists(_ context.Context, userID, propertyID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.favorites {
		if f.UserID == userID && f.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FavoriteRepository) Delete(_ context.Context, userID, propertyID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, f := range r.s.favorites {
		if f.UserID == userID && f.PropertyID == propertyID {
			delete(r.s.favorites, id)
		}
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(_ context.Context, userID uint) ([]repositories.FavoriteView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []repositories.FavoriteView
	for _, f := range r.s.favorites {
		if f.UserID != userID {
			continue
		}
		p, ok := r.s.properties[f.PropertyID]
		if !ok {
			continue
		}
		view := repositories.FavoriteView{
			ID:              f.ID,
			PropertyID:      p.ID,
			CreatedAt:       f.CreatedAt,
			Title:           p.Title,
			Type:            p.Type,
			TransactionType: string(p.TransactionType),
			Price:           p.Price,
			City:            p.City,
			Images:          p.Images,
			OwnerID:         p.UserID,
		}
		if owner, ok := r.s.users[p.UserID]; ok {
			view.OwnerName = owner.Name
		}
		out = append(out, view)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
