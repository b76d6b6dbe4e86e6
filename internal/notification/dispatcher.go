package notification

import (
	"context"
	"sync"

	"bid-engine/internal/metrics"
	"bid-engine/utils"
)

const defaultQueueSize = 256

type job struct {
	kind      Kind
	recipient string
	vars      map[string]string
}

// Dispatcher renders and delivers notifications on a fixed pool of workers.
// Send never blocks: when the queue is full the message is dropped and logged.
type Dispatcher struct {
	sender Sender
	queue  chan job
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts workers goroutines delivering through sender
func NewDispatcher(sender Sender, workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan job, defaultQueueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

// Send enqueues a notification. Empty recipients are skipped.
func (d *Dispatcher) Send(_ context.Context, kind Kind, recipient string, vars map[string]string) {
	if recipient == "" {
		utils.Warn("notification: no recipient, skipping", map[string]any{"kind": kind})
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		utils.Warn("notification: dispatcher closed, dropping", map[string]any{"kind": kind})
		return
	}

	select {
	case d.queue <- job{kind: kind, recipient: recipient, vars: vars}:
		metrics.NotificationQueueDepth.Inc()
	default:
		metrics.NotificationsTotal.WithLabelValues(string(kind), "dropped").Inc()
		utils.Warn("notification: queue full, dropping", map[string]any{
			"kind":      kind,
			"recipient": recipient,
		})
	}
}

// Close stops accepting work and waits for queued notifications to be delivered
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.queue {
		metrics.NotificationQueueDepth.Dec()
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("notification: panic during delivery", map[string]any{"kind": j.kind, "panic": r})
		}
	}()

	msg, err := Render(j.kind, j.recipient, j.vars)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(j.kind), "failed").Inc()
		utils.Error("notification: render failed", map[string]any{"kind": j.kind, "error": err.Error()})
		return
	}

	if err := d.sender.Deliver(msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(j.kind), "failed").Inc()
		utils.Error("notification: delivery failed", map[string]any{
			"kind":      j.kind,
			"recipient": j.recipient,
			"error":     err.Error(),
		})
		return
	}

	metrics.NotificationsTotal.WithLabelValues(string(j.kind), "sent").Inc()
}
