package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/common"
)

func signIn(t *testing.T, f *fixture, email string) {
	t.Helper()
	_, _, err := f.identity.SignIn(context.Background(), email, "demo")
	require.NoError(t, err)
}

func TestScopeKey_FollowsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, "favorites", f.favorites.ScopeKey(ctx))

	signIn(t, f, "Alice@Example.com")
	assert.Equal(t, "favorites_alice@example.com", f.favorites.ScopeKey(ctx))

	require.NoError(t, f.identity.SignOut(ctx))
	assert.Equal(t, "favorites", f.favorites.ScopeKey(ctx))
}

func TestAdd_RequiresSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.favorites.Add(ctx, "7")
	assert.ErrorIs(t, err, common.ErrNoSession)

	// the legacy collection is untouched
	assert.Empty(t, f.favorites.List(ctx))
	_, ok, _ := f.store.Get(ctx, common.KeyFavoritesLegacy)
	assert.False(t, ok)
}

func TestAdd_DuplicateIsSoftError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")

	require.NoError(t, f.favorites.Add(ctx, "7"))
	err := f.favorites.Add(ctx, "7")
	assert.ErrorIs(t, err, common.ErrAlreadyFavorite)

	assert.Equal(t, []string{"7"}, f.favorites.List(ctx))
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")

	require.NoError(t, f.favorites.Add(ctx, "9"))
	require.NoError(t, f.favorites.Add(ctx, "2"))
	require.NoError(t, f.favorites.Add(ctx, "5"))

	assert.Equal(t, []string{"9", "2", "5"}, f.favorites.List(ctx))
}

func TestRemove_NormalizesNumericIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")

	require.NoError(t, f.favorites.Add(ctx, "42"))
	require.NoError(t, f.favorites.Remove(ctx, 42))

	assert.Empty(t, f.favorites.List(ctx))
}

func TestRemove_AbsentIDIsNoOpButStillSignals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")
	require.NoError(t, f.favorites.Add(ctx, "1"))

	var signals int
	f.notifier.Subscribe(changes.TopicFavorites, func(e changes.Event) { signals++ })

	require.NoError(t, f.favorites.Remove(ctx, "999"))

	assert.Equal(t, 1, signals)
	assert.Equal(t, []string{"1"}, f.favorites.List(ctx))
}

func TestList_DisjointPerIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signIn(t, f, "a@example.com")
	require.NoError(t, f.favorites.Add(ctx, "1"))
	require.NoError(t, f.favorites.Add(ctx, "2"))

	signIn(t, f, "b@example.com")
	assert.Empty(t, f.favorites.List(ctx), "user B must not see user A's favorites")
	require.NoError(t, f.favorites.Add(ctx, "3"))

	signIn(t, f, "a@example.com")
	assert.Equal(t, []string{"1", "2"}, f.favorites.List(ctx))
}

func TestList_NormalizesLegacyNumericEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")

	// an older profile stored raw numbers
	key := f.favorites.ScopeKey(ctx)
	require.NoError(t, f.store.Set(ctx, key, `[1, "2", 3]`))

	assert.Equal(t, []string{"1", "2", "3"}, f.favorites.List(ctx))
}

func TestList_CorruptCollectionDegradesToEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")

	require.NoError(t, f.store.Set(ctx, f.favorites.ScopeKey(ctx), "oops"))
	assert.Empty(t, f.favorites.List(ctx))
}

func TestFavoritesSignal_CarriesScopeKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "alice@example.com")

	var got changes.Event
	f.notifier.Subscribe(changes.TopicFavorites, func(e changes.Event) { got = e })

	require.NoError(t, f.favorites.Add(ctx, "7"))
	assert.Equal(t, "favorites_alice@example.com", got.Key)
}

// The end-to-end scenario from the product brief: fresh profile, demo user,
// one favorite, sign out, no leakage into the legacy scope.
func TestFreshProfile_EndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.identity.EnsureDemoUser(ctx))

	_, provisioned, err := f.identity.SignIn(ctx, "demo@tourist.local", "demo")
	require.NoError(t, err)
	assert.False(t, provisioned)

	require.NoError(t, f.favorites.Add(ctx, "7"))
	assert.Equal(t, []string{"7"}, f.favorites.List(ctx))

	require.NoError(t, f.identity.SignOut(ctx))
	assert.Equal(t, "favorites", f.favorites.ScopeKey(ctx))
	assert.Empty(t, f.favorites.List(ctx), "demo user's favorites must not leak into the legacy scope")
}
