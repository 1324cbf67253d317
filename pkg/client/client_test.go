package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI - минимальная имитация /api/v1/notifications
type fakeAPI struct {
	mu       sync.Mutex
	notes    []Notification
	lists    atomic.Int32
	failNext atomic.Bool
	gate     chan struct{} // если не nil, список отдается только после сигнала
	tokens   []string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.tokens = append(f.tokens, r.Header.Get("Authorization"))
		gate := f.gate
		f.mu.Unlock()
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","domain":"auth","message":"Authorization header required"}}`))
			return
		}
		f.lists.Add(1)
		if f.failNext.CompareAndSwap(true, false) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if gate != nil {
			<-gate
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.notes)
	})
	mux.HandleFunc("/api/v1/notifications/unread-count", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var n int64
		for _, note := range f.notes {
			if !note.IsRead {
				n++
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]int64{"count": n})
	})
	mux.HandleFunc("/api/v1/notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		for i := range f.notes {
			f.notes[i].IsRead = true
		}
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"message":"All notifications marked as read"}`))
	})
	return mux
}

func newFake(t *testing.T) (*fakeAPI, *httptest.Server) {
	f := &fakeAPI{notes: []Notification{
		{ID: 2, UserID: 1, Type: "message", Title: "Nouveau message", Message: "Amine: Bonjour"},
		{ID: 1, UserID: 1, Type: "favorite", Title: "Nouveau favori", IsRead: true},
	}}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return f, srv
}

func TestClient_ListAndCount(t *testing.T) {
	_, srv := newFake(t)
	c := New(srv.URL+"/", "tok", srv.Client())

	notes, err := c.ListNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "message", notes[0].Type)

	count, err := c.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, c.MarkAllRead(context.Background()))
	count, err = c.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestClient_APIError(t *testing.T) {
	_, srv := newFake(t)
	c := New(srv.URL, "", srv.Client())

	_, err := c.ListNotifications(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "auth", apiErr.Domain)
	assert.Contains(t, apiErr.Error(), "Authorization header required")
}

func TestPoller_LoadsImmediatelyAndOnInterval(t *testing.T) {
	f, srv := newFake(t)
	updates := make(chan Snapshot, 16)
	p := NewPoller(New(srv.URL, "", srv.Client()), PollerOptions{
		Interval: 20 * time.Millisecond,
		OnUpdate: func(s Snapshot) { updates <- s },
	})

	p.Start("tok")
	defer p.Stop()

	first := <-updates
	assert.Len(t, first.Notifications, 2)
	assert.EqualValues(t, 1, first.UnreadCount)

	require.Eventually(t, func() bool { return f.lists.Load() >= 3 }, time.Second, 5*time.Millisecond)

	f.mu.Lock()
	assert.Equal(t, "Bearer tok", f.tokens[0])
	f.mu.Unlock()
}

func TestPoller_ErrorKeepsPreviousState(t *testing.T) {
	f, srv := newFake(t)
	updates := make(chan Snapshot, 16)
	p := NewPoller(New(srv.URL, "", srv.Client()), PollerOptions{
		Interval: time.Hour,
		OnUpdate: func(s Snapshot) { updates <- s },
	})
	p.Start("tok")
	defer p.Stop()
	<-updates

	f.failNext.Store(true)
	p.Refresh(context.Background())

	snap := p.Snapshot()
	assert.Len(t, snap.Notifications, 2)
	assert.EqualValues(t, 1, snap.UnreadCount)
	assert.Len(t, updates, 0)
}

func TestPoller_StopClearsState(t *testing.T) {
	_, srv := newFake(t)
	updates := make(chan Snapshot, 16)
	p := NewPoller(New(srv.URL, "", srv.Client()), PollerOptions{
		Interval: time.Hour,
		OnUpdate: func(s Snapshot) { updates <- s },
	})
	p.Start("tok")
	<-updates
	require.NotEmpty(t, p.Snapshot().Notifications)

	p.Stop()
	assert.Empty(t, p.Snapshot().Notifications)
	assert.Zero(t, p.Snapshot().UnreadCount)

	// Refresh вне сессии ничего не делает
	p.Refresh(context.Background())
	assert.Empty(t, p.Snapshot().Notifications)
}

// Ответ, пришедший после окончания сессии, не должен попасть в состояние
func TestPoller_DiscardsStaleResponse(t *testing.T) {
	f, srv := newFake(t)
	updates := make(chan Snapshot, 16)
	p := NewPoller(New(srv.URL, "", srv.Client()), PollerOptions{
		Interval: time.Hour,
		OnUpdate: func(s Snapshot) { updates <- s },
	})
	p.Start("tok")
	<-updates

	gate := make(chan struct{})
	f.mu.Lock()
	f.gate = gate
	f.mu.Unlock()

	before := f.lists.Load()
	refreshed := make(chan struct{})
	go func() {
		p.Refresh(context.Background())
		close(refreshed)
	}()
	require.Eventually(t, func() bool { return f.lists.Load() > before }, time.Second, time.Millisecond)

	p.Stop()
	close(gate)
	<-refreshed

	assert.Empty(t, p.Snapshot().Notifications)
	assert.Len(t, updates, 0)
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	p := NewPoller(New("http://localhost", "", nil), PollerOptions{})
	assert.Equal(t, DefaultPollInterval, p.interval)
}
