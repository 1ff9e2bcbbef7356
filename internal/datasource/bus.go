package datasource

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-screen-sync/models"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber
// that falls further behind than this loses events instead of blocking
// the publisher.
const subscriberBuffer = 16

// Bus fans change events out to per-screen subscribers. Publishing
// never blocks: delivery to a full subscriber channel is dropped, so a
// stuck consumer cannot stall sync progress. The zero value is not
// usable, construct with [NewBus].
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan models.ChangeEvent
	closed bool
}

// NewBus returns an empty, ready-to-use event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]chan models.ChangeEvent)}
}

// Subscribe registers a listener for one screen's events. The returned
// channel closes when ctx is cancelled or the bus shuts down; a closed
// bus hands back an already-closed channel so late subscribers observe
// end-of-stream instead of blocking forever.
func (b *Bus) Subscribe(ctx context.Context, screenID string) <-chan models.ChangeEvent {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		ch := make(chan models.ChangeEvent)
		close(ch)
		return ch
	}

	b.nextID++
	id := b.nextID
	ch := make(chan models.ChangeEvent, subscriberBuffer)

	group := b.subs[screenID]
	if group == nil {
		group = make(map[int]chan models.ChangeEvent)
		b.subs[screenID] = group
	}
	group[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(screenID, id)
	}()

	return ch
}

// Publish delivers the event to every subscriber of its screen.
func (b *Bus) Publish(event models.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs[event.ScreenID] {
		select {
		case ch <- event:
		default:
			// Подписчик не успевает читать: событие для него теряется,
			// остальные получают его без задержки.
		}
	}
}

// Close shuts the bus down and closes every subscriber channel. Events
// published after Close are discarded.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, group := range b.subs {
		for _, ch := range group {
			close(ch)
		}
	}
	b.subs = make(map[string]map[int]chan models.ChangeEvent)
}

func (b *Bus) unsubscribe(screenID string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	group, ok := b.subs[screenID]
	if !ok {
		return
	}
	ch, ok := group[id]
	if !ok {
		return
	}
	delete(group, id)
	if len(group) == 0 {
		delete(b.subs, screenID)
	}
	close(ch)
}
