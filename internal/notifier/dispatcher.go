package notifier

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"immo_backend/internal/logger"
	"immo_backend/internal/metrics"
)

// Job - одна единица доставки уведомлений
type Job struct {
	Kind string
	Run  func(ctx context.Context) error
}

// Submitter - то, что нужно Emitter от очереди
type Submitter interface {
	Submit(job Job) bool
}

type DispatcherOptions struct {
	QueueSize  int
	Workers    int
	JobTimeout time.Duration
	Metrics    *metrics.Metrics
}

// Dispatcher - ограниченная очередь с пулом воркеров.
// Submit никогда не блокирует вызывающего: при полной очереди задача
// отбрасывается. Повторов нет, ошибки только логируются и считаются.
type Dispatcher struct {
	queue   chan Job
	timeout time.Duration
	metrics *metrics.Metrics

	mu      sync.RWMutex
	closed  bool
	workers sync.WaitGroup
	pending atomic.Int64
}

func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = 5 * time.Second
	}

	d := &Dispatcher{
		queue:   make(chan Job, opts.QueueSize),
		timeout: opts.JobTimeout,
		metrics: opts.Metrics,
	}
	for i := 0; i < opts.Workers; i++ {
		d.workers.Add(1)
		go d.work(i)
	}
	logger.Info("Notification dispatcher started", "workers", opts.Workers, "queue_size", opts.QueueSize)
	return d
}

// Submit ставит задачу в очередь; false - задача отброшена
func (d *Dispatcher) Submit(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.metrics.NotificationDropped(job.Kind)
		logger.Warn("Notification dropped: dispatcher closed", "kind", job.Kind)
		return false
	}

	d.pending.Add(1)
	select {
	case d.queue <- job:
		d.metrics.NotificationEnqueued(job.Kind)
		return true
	default:
		d.pending.Add(-1)
		d.metrics.NotificationDropped(job.Kind)
		logger.Warn("Notification dropped: queue full", "kind", job.Kind, "queue_size", cap(d.queue))
		return false
	}
}

func (d *Dispatcher) work(id int) {
	defer d.workers.Done()
	for job := range d.queue {
		d.run(id, job)
		d.pending.Add(-1)
	}
}

func (d *Dispatcher) run(workerID int, job Job) {
	// контекст запроса к этому моменту может быть уже отменен - используем свой
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.metrics.NotificationFailed(job.Kind)
			logger.Error("Notification job panicked", "kind", job.Kind, "worker", workerID, "panic", r)
		}
	}()

	if err := job.Run(ctx); err != nil {
		d.metrics.NotificationFailed(job.Kind)
		logger.WorkerLog("notification_dispatcher", job.Kind, err, "worker", workerID)
		return
	}
	d.metrics.NotificationDelivered(job.Kind)
}

// Flush ждет, пока очередь опустеет и все задачи завершатся
func (d *Dispatcher) Flush(ctx context.Context) error {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for d.pending.Load() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close перестает принимать задачи и дожидается уже поставленных
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		logger.Warn("Notification dispatcher stopped before draining", "pending", d.pending.Load())
		return ctx.Err()
	}
}
