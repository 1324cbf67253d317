package services

import (
	"context"
	"testing"
	"time"

	"immo_backend/internal/models"
	"immo_backend/internal/notifier"
	"immo_backend/internal/repositories"
	"immo_backend/internal/repositories/memory"

	"github.com/stretchr/testify/require"
)

type env struct {
	store      *memory.Store
	repos      *repositories.Container
	dispatcher *notifier.Dispatcher
	services   *ServiceContainer
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	repos := store.Container()
	d := notifier.NewDispatcher(notifier.DispatcherOptions{QueueSize: 64, Workers: 2})
	t.Cleanup(func() { d.Close(context.Background()) })

	emitter := notifier.NewEmitter(notifier.EmitterDeps{
		Queue:         d,
		Properties:    repos.Properties,
		Notifications: repos.Notifications,
	})
	return &env{
		store:      store,
		repos:      repos,
		dispatcher: d,
		services:   NewServiceContainer(ServiceDeps{Repos: repos, Notifier: emitter}),
	}
}

func (e *env) user(t *testing.T, name string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@immo.tn", Role: role}
	require.NoError(t, e.repos.Users.Create(context.Background(), u))
	return u
}

func (e *env) property(t *testing.T, owner *models.User, title, city string) *models.Property {
	t.Helper()
	p := &models.Property{UserID: owner.ID, Title: title, Type: "appartement", TransactionType: models.TransactionTypeRent, Price: 900, City: city}
	require.NoError(t, e.repos.Properties.Create(context.Background(), p))
	return p
}

// flush дожидается доставки всех поставленных уведомлений
func (e *env) flush(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, e.dispatcher.Flush(ctx))
}

func (e *env) notificationsFor(userID uint) []models.Notification {
	var out []models.Notification
	for _, n := range e.store.Notifications() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
