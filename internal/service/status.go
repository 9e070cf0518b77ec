package service

import "sync"

// SyncState is the coarse phase of the sync engine.
type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateSyncing SyncState = "syncing"
	SyncStateSuccess SyncState = "success"
	SyncStateError   SyncState = "error"
)

// SyncStatusEvent is one transition on the status stream. Processed is only
// meaningful for success events and is a best-effort count of records pushed
// in the cycle; Err is only set for error events.
type SyncStatusEvent struct {
	State     SyncState
	Processed int
	Err       error
}

// subscriberBuffer bounds how many undelivered events a subscriber may hold.
// When it overflows the oldest event is dropped; the engine never blocks on a
// slow consumer.
const subscriberBuffer = 16

// StatusBroadcaster is a single-producer, multi-consumer stream of
// [SyncStatusEvent]. Delivery is multicast with no replay: a new subscriber
// only sees events published after Subscribe returns. Per-subscriber ordering
// follows publish order.
type StatusBroadcaster struct {
	mu   sync.Mutex
	subs map[uint64]chan SyncStatusEvent
	next uint64
}

func NewStatusBroadcaster() *StatusBroadcaster {
	return &StatusBroadcaster{subs: make(map[uint64]chan SyncStatusEvent)}
}

// Subscribe registers a new consumer and returns its event channel together
// with an unsubscribe func. Unsubscribing closes the channel; it is safe to
// call more than once.
func (b *StatusBroadcaster) Subscribe() (<-chan SyncStatusEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	ch := make(chan SyncStatusEvent, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}

	return ch, unsubscribe
}

// Publish delivers event to every current subscriber. A subscriber whose
// buffer is full loses its oldest pending event first.
func (b *StatusBroadcaster) Publish(event SyncStatusEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
}
