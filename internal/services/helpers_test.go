package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/logging"
)

// memStore is an in-memory Store for unit tests. It reproduces the real
// adapter's behavior of publishing a storage event on every write.
type memStore struct {
	m        map[string]string
	notifier *changes.Notifier
}

func newMemStore(n *changes.Notifier) *memStore {
	return &memStore{m: map[string]string{}, notifier: n}
}

func (s *memStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.m[key] = value
	s.notify(key)
	return nil
}

func (s *memStore) Remove(ctx context.Context, key string) error {
	delete(s.m, key)
	s.notify(key)
	return nil
}

func (s *memStore) notify(key string) {
	if s.notifier != nil {
		s.notifier.Publish(changes.Event{Topic: changes.TopicStorage, Key: key})
	}
}

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewSlogLogger(slog.Default())
}

// fixture wires a store, notifier, and both services the way the app does.
type fixture struct {
	store     *memStore
	notifier  *changes.Notifier
	identity  IdentityService
	favorites FavoritesService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	n := changes.NewNotifier()
	st := newMemStore(n)
	id := NewIdentityService(st, n, testLogger(t))
	fav := NewFavoritesService(st, id, n, testLogger(t))
	return &fixture{store: st, notifier: n, identity: id, favorites: fav}
}
