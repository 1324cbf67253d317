package client

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const DefaultPollInterval = 30 * time.Second

// Snapshot - последнее успешно загруженное состояние
type Snapshot struct {
	Notifications []Notification
	UnreadCount   int64
	LoadedAt      time.Time
}

type PollerOptions struct {
	Interval time.Duration
	Logger   *slog.Logger
	// OnUpdate вызывается после каждой принятой загрузки
	OnUpdate func(Snapshot)
}

// Poller опрашивает уведомления, пока активна сессия.
// Каждая загрузка запоминает поколение сессии; ответы устаревших поколений отбрасываются.
type Poller struct {
	client   *Client
	interval time.Duration
	log      *slog.Logger
	onUpdate func(Snapshot)

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	session    *Client
	state      Snapshot
}

func NewPoller(c *Client, opts PollerOptions) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Poller{
		client:   c,
		interval: opts.Interval,
		log:      opts.Logger,
		onUpdate: opts.OnUpdate,
	}
}

// Start начинает новую сессию: сразу загружает данные и дальше раз в интервал.
// Предыдущая сессия, если была, завершается.
func (p *Poller) Start(token string) {
	p.Stop()

	p.mu.Lock()
	p.generation++
	gen := p.generation
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	session := p.client.WithToken(token)
	p.session = session
	p.mu.Unlock()

	go p.loop(ctx, gen, session)
}

// Stop завершает сессию и очищает состояние. Загрузка "в полете" до сервера
// может завершиться, но ее результат будет отброшен.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.generation++
	cancel := p.cancel
	p.cancel = nil
	p.session = nil
	p.state = Snapshot{}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.Notifications = append([]Notification(nil), p.state.Notifications...)
	return s
}

// Refresh - внеочередная загрузка в текущей сессии (например, после MarkRead)
func (p *Poller) Refresh(ctx context.Context) {
	p.mu.Lock()
	gen := p.generation
	session := p.session
	p.mu.Unlock()
	if session == nil {
		return
	}
	p.load(ctx, gen, session)
}

func (p *Poller) loop(ctx context.Context, gen uint64, client *Client) {
	p.load(ctx, gen, client)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.load(ctx, gen, client)
		}
	}
}

func (p *Poller) load(ctx context.Context, gen uint64, client *Client) {
	list, err := client.ListNotifications(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Warn("notification poll failed", "error", err)
		}
		return
	}
	count, err := client.UnreadCount(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Warn("unread count poll failed", "error", err)
		}
		return
	}

	snap := Snapshot{Notifications: list, UnreadCount: count, LoadedAt: time.Now()}

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		p.log.Debug("stale notification poll discarded", "generation", gen)
		return
	}
	p.state = snap
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snap)
	}
}
