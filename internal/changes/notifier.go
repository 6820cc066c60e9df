// Package changes implements the in-process change notifier connecting the
// identity, favorites, and storage layers to their observers.
//
// Delivery is synchronous and in subscription order: Publish runs every
// matching handler before it returns, so within one process a mutation, its
// persistence, and its signal are strictly sequential. Changes made by
// another process arrive separately through the store watcher and are
// republished here with TopicStorage and an empty key.
package changes

import (
	"sync"

	"github.com/google/uuid"
)

// Topic identifies a class of change events.
type Topic string

const (
	// TopicAuth fires on every successful sign-in, registration, and
	// sign-out.
	TopicAuth Topic = "tg:authchange"

	// TopicFavorites fires on every favorites mutation.
	TopicFavorites Topic = "favorites:changed"

	// TopicStorage fires after every local store write. Key is the
	// written store key, or empty when the write originated in another
	// process and the key is unknown.
	TopicStorage Topic = "storage"
)

// Event describes a single change.
type Event struct {
	Topic Topic

	// Key is the store key the event refers to, when known.
	Key string

	// External marks events originated outside this process.
	External bool
}

// Handler receives published events. Handlers run on the publisher's
// goroutine and should return quickly.
type Handler func(Event)

type subscription struct {
	id      uuid.UUID
	topic   Topic
	handler Handler
}

// Notifier is a process-wide fan-out of change events.
// The zero value is not usable; call NewNotifier.
type Notifier struct {
	mu   sync.Mutex
	subs []subscription
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers handler for all events on topic and returns a handle
// for Unsubscribe.
func (n *Notifier) Subscribe(topic Topic, handler Handler) uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := uuid.New()
	n.subs = append(n.subs, subscription{id: id, topic: topic, handler: handler})
	return id
}

// Unsubscribe removes the subscription with the given handle. Unknown
// handles are ignored.
func (n *Notifier) Unsubscribe(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every subscriber of e.Topic, in subscription order,
// before returning.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	handlers := make([]Handler, 0, len(n.subs))
	for _, s := range n.subs {
		if s.topic == e.Topic {
			handlers = append(handlers, s.handler)
		}
	}
	n.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}
