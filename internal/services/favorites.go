package services

import (
	"context"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/common"
	"github.com/dmitrijs2005/touristguide/internal/logging"
	"github.com/dmitrijs2005/touristguide/internal/models"
	"github.com/dmitrijs2005/touristguide/internal/repositories/localstore"
)

// SessionProvider is the slice of the identity service the favorites
// service needs: just the active session.
type SessionProvider interface {
	CurrentIdentity(ctx context.Context) (string, bool)
}

// FavoritesService manages the per-identity collection of attraction ids.
//
// All ids are normalized to strings before any membership test, so numeric
// and string representations of the same id always agree. The collection is
// persisted on every mutation and every mutation emits
// changes.TopicFavorites.
type FavoritesService interface {
	// ScopeKey returns the storage key of the active identity's
	// collection, or the legacy shared key when nobody is signed in.
	ScopeKey(ctx context.Context) string

	// List returns the favorite ids in insertion order.
	List(ctx context.Context) []string

	// Add appends id to the collection. Requires an active session;
	// an id already present yields common.ErrAlreadyFavorite.
	Add(ctx context.Context, id any) error

	// Remove deletes id from the collection. Removing an absent id is a
	// no-op success that still persists and signals.
	Remove(ctx context.Context, id any) error
}

type favoritesService struct {
	store    localstore.Store
	session  SessionProvider
	notifier *changes.Notifier
	log      logging.Logger
}

// NewFavoritesService constructs a FavoritesService scoped by the given
// session provider.
func NewFavoritesService(store localstore.Store, session SessionProvider, notifier *changes.Notifier, log logging.Logger) FavoritesService {
	return &favoritesService{store: store, session: session, notifier: notifier, log: log}
}

// ScopeKey is recomputed on every call; the active identity can change
// between calls and the key must follow it.
func (s *favoritesService) ScopeKey(ctx context.Context) string {
	if email, ok := s.session.CurrentIdentity(ctx); ok {
		return common.KeyFavoritesPrefix + strings.ToLower(email)
	}
	return common.KeyFavoritesLegacy
}

func (s *favoritesService) List(ctx context.Context) []string {
	return s.load(ctx, s.ScopeKey(ctx))
}

func (s *favoritesService) Add(ctx context.Context, id any) error {
	if _, ok := s.session.CurrentIdentity(ctx); !ok {
		return common.ErrNoSession
	}

	key := s.ScopeKey(ctx)
	want := models.IDString(id)

	favs := s.load(ctx, key)
	for _, f := range favs {
		if f == want {
			return common.ErrAlreadyFavorite
		}
	}
	favs = append(favs, want)
	return s.save(ctx, key, favs)
}

func (s *favoritesService) Remove(ctx context.Context, id any) error {
	key := s.ScopeKey(ctx)
	want := models.IDString(id)

	favs := s.load(ctx, key)
	kept := favs[:0]
	for _, f := range favs {
		if f != want {
			kept = append(kept, f)
		}
	}
	return s.save(ctx, key, kept)
}

// load reads and normalizes the collection under key. Corrupt JSON is
// logged and treated as empty.
func (s *favoritesService) load(ctx context.Context, key string) []string {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to read favorites", "key", key, "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	// Older profiles may contain numeric ids; decode loosely and
	// normalize every element to a string.
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn(ctx, "corrupt favorites collection, treating as empty", "key", key, "error", err)
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, models.IDString(it))
	}
	return ids
}

func (s *favoritesService) save(ctx context.Context, key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		return err
	}
	s.notifier.Publish(changes.Event{Topic: changes.TopicFavorites, Key: key})
	return nil
}
