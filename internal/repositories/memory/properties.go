package memory

import (
	"context"
	"sort"

	"immo_backend/internal/models"
	"immo_backend/internal/repositories"
)

type PropertyRepository struct{ s *Store }

func (r *PropertyRepository) Create(_ context.Context, property *models.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[property.UserID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.s.stamp(&property.BaseModel)
	property.UpdatedAt = property.CreatedAt
	cp := *property
	cp.Owner = nil
	r.s.properties[property.ID] = &cp
	return nil
}

func (r *PropertyRepository) FindByID(_ context.Context, id uint) (*models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.properties[id]
	if !ok {
		return nil, repositories.ErrPropertyNotFound
	}
	cp := *p
	if owner, ok := r.s.users[p.UserID]; ok {
		o := *owner
		cp.Owner = &o
	}
	return &cp, nil
}

func (r *PropertyRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.properties[id]; !ok {
		return repositories.ErrPropertyNotFound
	}
	r.s.deletePropertyLocked(id)
	return nil
}

func (r *PropertyRepository) FindOwnersInCity(_ context.Context, city string, excludePropertyID, excludeUserID uint, limit int) ([]uint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[uint]bool)
	for _, p := range r.s.properties {
		if p.City != city || p.ID == excludePropertyID || p.UserID == excludeUserID {
			continue
		}
		seen[p.UserID] = true
	}

	owners := make([]uint, 0, len(seen))
	for id := range seen {
		owners = append(owners, id)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	if limit > 0 && len(owners) > limit {
		owners = owners[:limit]
	}
	return owners, nil
}

// deletePropertyLocked - каскад на favorites; вызывается под s.mu
func (s *Store) deletePropertyLocked(id uint) {
	delete(s.properties, id)
	for fid, f := range s.favorites {
		if f.PropertyID == id {
			delete(s.favorites, fid)
		}
	}
}
