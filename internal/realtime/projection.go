package realtime

import (
	"context"
	"fmt"
	"sync"
)

// Entity is anything the projection can key by identity.
type Entity interface {
	EntityID() string
}

// Action is the row-change verb delivered by the transport.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Event is one row change for a watched table.
type Event[T Entity] struct {
	Action Action
	Record T
}

// State tracks the projection lifecycle: Loading until the initial fetch
// lands, Ready afterwards.
type State int

const (
	StateLoading State = iota
	StateReady
	StateClosed
)

// Projection maintains an in-memory collection for one watched table,
// synchronized with out-of-band insert/update/delete notifications. Events
// are applied strictly in arrival order by a single consumer goroutine, so
// no two mutations ever race on the collection.
type Projection[T Entity] struct {
	name string

	mu    sync.RWMutex
	state State
	items []T
	index map[string]int

	events  chan Event[T]
	done    chan struct{}
	applied func(action Action, size int) // optional observation hook
}

// NewProjection creates a projection for the named table. bufferSize bounds
// the queue of not-yet-applied notifications.
func NewProjection[T Entity](name string, bufferSize int) *Projection[T] {
	return &Projection[T]{
		name:   name,
		state:  StateLoading,
		index:  make(map[string]int),
		events: make(chan Event[T], bufferSize),
		done:   make(chan struct{}),
	}
}

// OnApply registers a hook invoked after each applied event with the
// resulting collection size (metrics).
func (p *Projection[T]) OnApply(fn func(action Action, size int)) {
	p.applied = fn
}

// Name returns the watched table name.
func (p *Projection[T]) Name() string { return p.name }

// State returns the current lifecycle state.
func (p *Projection[T]) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Bootstrap runs the initial bulk fetch and seeds the collection. A failed
// fetch leaves any previously loaded data in place. If the projection was
// closed while the fetch was in flight, the late result is discarded rather
// than applied to torn-down state.
func (p *Projection[T]) Bootstrap(ctx context.Context, loader func(context.Context) ([]T, error)) error {
	items, err := loader(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap %s: %w", p.name, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateClosed {
		return fmt.Errorf("bootstrap %s: projection closed, result discarded", p.name)
	}

	p.items = make([]T, 0, len(items))
	p.index = make(map[string]int, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, dup := p.index[id]; dup {
			continue
		}
		p.index[id] = len(p.items)
		p.items = append(p.items, it)
	}
	p.state = StateReady
	return nil
}

// Start launches the single consumer goroutine. Each queued event is fully
// applied before the next one is read, preserving arrival order.
func (p *Projection[T]) Start() {
	go func() {
		for {
			select {
			case ev := <-p.events:
				p.apply(ev)
			case <-p.done:
				return
			}
		}
	}()
}

// Enqueue queues a notification for application. Returns false if the
// projection is closed or the queue is full (event dropped).
func (p *Projection[T]) Enqueue(ev Event[T]) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.events <- ev:
		return true
	default:
		return false
	}
}

func (p *Projection[T]) apply(ev Event[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateClosed {
		return
	}

	id := ev.Record.EntityID()
	pos, exists := p.index[id]

	switch ev.Action {
	case ActionInsert:
		// idempotent against duplicate delivery
		if exists {
			break
		}
		p.index[id] = len(p.items)
		p.items = append(p.items, ev.Record)
	case ActionUpdate:
		if !exists {
			break
		}
		p.items[pos] = ev.Record
	case ActionDelete:
		if !exists {
			break
		}
		p.items = append(p.items[:pos], p.items[pos+1:]...)
		delete(p.index, id)
		for i := pos; i < len(p.items); i++ {
			p.index[p.items[i].EntityID()] = i
		}
	}

	if p.applied != nil {
		p.applied(ev.Action, len(p.items))
	}
}

// Snapshot returns a copy of the current collection in insertion order.
func (p *Projection[T]) Snapshot() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the current collection size.
func (p *Projection[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// Close stops the consumer and marks the projection closed. In-flight
// bootstrap results arriving after Close are discarded.
func (p *Projection[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateClosed {
		return
	}
	p.state = StateClosed
	close(p.done)
}
