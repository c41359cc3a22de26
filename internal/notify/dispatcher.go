package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Dispatcher queues events and delivers them from a background goroutine.
type Dispatcher struct {
	n       Notifier
	session uuid.UUID
	name    string
	now     func() time.Time
	timeout time.Duration

	queue  chan Event
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
	closed bool
}

// NewDispatcher starts a dispatcher with room for size pending events.
func NewDispatcher(n Notifier, name string, size int) *Dispatcher {
	d := &Dispatcher{
		n:       n,
		session: uuid.New(),
		name:    name,
		now:     time.Now,
		timeout: 10 * time.Second,
		queue:   make(chan Event, size),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Session() uuid.UUID { return d.session }

// Send queues an action. It never blocks; when the queue is full or the
// dispatcher is closed the event is dropped and false is returned.
func (d *Dispatcher) Send(a Action, detail string) bool {
	e := Event{
		ID:      uuid.New(),
		Session: d.session,
		Action:  a,
		Name:    d.name,
		At:      d.now(),
		Detail:  detail,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	select {
	case d.queue <- e:
		return true
	default:
		log.Printf("notify: queue full, dropping %s", a)
		return false
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.n.Notify(ctx, e); err != nil {
			log.Printf("notify: %s: %v", e.Action, err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for the queued ones to be
// delivered or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
