package memory

import (
	"sort"

	"immo_backend/internal/repositories"
)

func sortByID[T any](items []T, id func(T) uint) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

// sortThread - created_at ASC, id ASC (как ORDER BY в SQL-реализации)
func sortThread(thread []repositories.MessageView) {
	sort.SliceStable(thread, func(i, j int) bool {
		if !thread[i].CreatedAt.Equal(thread[j].CreatedAt) {
			return thread[i].CreatedAt.Before(thread[j].CreatedAt)
		}
		return thread[i].ID < thread[j].ID
	})
}
