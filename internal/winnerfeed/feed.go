// Package winnerfeed fans announced-winner changes out to every signed-in
// session. Delivery is at-least-once per subscriber; consumers apply events
// idempotently. Events for the same category are delivered in publish order.
package winnerfeed

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventKind describes what happened to a category's winner row.
type EventKind string

const (
	Inserted EventKind = "inserted"
	Updated  EventKind = "updated"
	Deleted  EventKind = "deleted"
)

// Event is one winner change. Nominee is empty for Deleted events.
type Event struct {
	ID          string    `json:"id"`
	Kind        EventKind `json:"kind"`
	Category    string    `json:"category"`
	Nominee     string    `json:"nominee,omitempty"`
	AnnouncedAt time.Time `json:"announced_at"`
}

const subscriberBuffer = 64

// Feed is an in-process broadcast channel for winner events.
type Feed struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// Subscription receives winner events until closed.
type Subscription struct {
	feed *Feed
	ch   chan Event
	once sync.Once
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new consumer. The caller must drain Events() or
// accept dropped events once the buffer fills.
func (f *Feed) Subscribe() *Subscription {
	sub := &Subscription{
		feed: f,
		ch:   make(chan Event, subscriberBuffer),
	}
	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	return sub
}

// Publish delivers an event to every live subscriber. A slow subscriber
// whose buffer is full misses the event rather than blocking the publisher.
func (f *Feed) Publish(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subs {
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (f *Feed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Events returns the subscription's receive channel. It is closed when the
// subscription is closed.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.subs, s)
		s.feed.mu.Unlock()
		close(s.ch)
	})
}
