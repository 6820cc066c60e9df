// Package services contains the application services of the tourist guide:
// the identity service (fake accounts and the active session) and the
// favorites service (per-identity attraction collections).
//
// Both services persist through the localstore key/value adapter and signal
// every mutation through the process-wide change notifier.
package services

import (
	"context"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/common"
	"github.com/dmitrijs2005/touristguide/internal/logging"
	"github.com/dmitrijs2005/touristguide/internal/models"
	"github.com/dmitrijs2005/touristguide/internal/repositories/localstore"
)

// Demo account seeded into an empty profile so sign-in always has a
// known-good path on first run.
const (
	DemoUserName  = "Demo Traveler"
	DemoUserEmail = "demo@tourist.local"
	DemoPassword  = "demo"
)

// Name given to accounts created implicitly on unknown-email sign-in and to
// registrations submitted without a name.
const defaultProvisionedName = "Traveler"

const minPasswordLen = 4

// emailRx is deliberately loose: anything of the shape x@y.z without
// whitespace passes. The identity system is a demo, not an RFC validator.
var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// IdentityService manages the collection of fake accounts and the single
// active session.
//
// Contract:
//   - ListUsers: all accounts in insertion order.
//   - Register: create an account; duplicate emails fail, valid
//     registrations also sign in.
//   - SignIn: authenticate; an unknown email never fails, it provisions a
//     fresh account and signs in (deliberate frictionless-demo policy).
//   - SignOut: clear the session; idempotent.
//   - CurrentIdentity: the active session email, if any.
//
// Every successful sign-in, registration, and sign-out synchronously emits
// changes.TopicAuth, in order with the mutation.
type IdentityService interface {
	ListUsers(ctx context.Context) []models.UserRecord
	Register(ctx context.Context, name, email, password string) (*models.UserRecord, error)
	SignIn(ctx context.Context, email, password string) (*models.UserRecord, bool, error)
	SignOut(ctx context.Context) error
	CurrentIdentity(ctx context.Context) (string, bool)
	EnsureDemoUser(ctx context.Context) error
}

type identityService struct {
	store    localstore.Store
	notifier *changes.Notifier
	log      logging.Logger
}

// NewIdentityService constructs an IdentityService bound to the given store
// and notifier.
func NewIdentityService(store localstore.Store, notifier *changes.Notifier, log logging.Logger) IdentityService {
	return &identityService{store: store, notifier: notifier, log: log}
}

// EnsureDemoUser seeds the demo account when the user collection is empty.
// Called once at startup; a non-empty collection is left untouched.
func (s *identityService) EnsureDemoUser(ctx context.Context) error {
	users := s.loadUsers(ctx)
	if len(users) > 0 {
		return nil
	}
	users = append(users, models.UserRecord{
		Name:     DemoUserName,
		Email:    DemoUserEmail,
		Password: DemoPassword,
	})
	return s.saveUsers(ctx, users)
}

// ListUsers returns all accounts in insertion order. A corrupt stored
// collection degrades to empty.
func (s *identityService) ListUsers(ctx context.Context) []models.UserRecord {
	return s.loadUsers(ctx)
}

// Register creates a new account and signs it in. The email must pass the
// syntactic check and be unused (case-insensitively); the password must be
// at least four characters. A blank name defaults to "Traveler".
func (s *identityService) Register(ctx context.Context, name, email, password string) (*models.UserRecord, error) {
	email = strings.TrimSpace(email)
	if !emailRx.MatchString(email) {
		return nil, common.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, common.ErrWeakPassword
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultProvisionedName
	}

	users := s.loadUsers(ctx)
	for _, u := range users {
		if u.EmailEquals(email) {
			return nil, common.ErrDuplicateEmail
		}
	}

	user := models.UserRecord{Name: name, Email: email, Password: password}
	users = append(users, user)
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	if err := s.setLogged(ctx, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignIn authenticates email/password. The returned bool reports whether the
// account was auto-provisioned: an unknown email is never a hard failure,
// a fresh account is created with the supplied password ("demo" when blank)
// and signed in on the spot.
func (s *identityService) SignIn(ctx context.Context, email, password string) (*models.UserRecord, bool, error) {
	email = strings.TrimSpace(email)
	if !emailRx.MatchString(email) {
		return nil, false, common.ErrInvalidEmail
	}

	users := s.loadUsers(ctx)
	for _, u := range users {
		if !u.EmailEquals(email) {
			continue
		}
		if u.Password != password {
			return nil, false, common.ErrWrongPassword
		}
		if err := s.setLogged(ctx, u.Email); err != nil {
			return nil, false, err
		}
		found := u
		return &found, false, nil
	}

	// No such account: provision one and sign in.
	if password == "" {
		password = DemoPassword
	}
	user := models.UserRecord{Name: defaultProvisionedName, Email: email, Password: password}
	users = append(users, user)
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, false, err
	}
	if err := s.setLogged(ctx, email); err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

// SignOut clears the session unconditionally. Signing out while signed out
// is a no-op that still emits the auth signal.
func (s *identityService) SignOut(ctx context.Context) error {
	if err := s.store.Remove(ctx, common.KeyLoggedIn); err != nil {
		return err
	}
	s.notifier.Publish(changes.Event{Topic: changes.TopicAuth, Key: common.KeyLoggedIn})
	return nil
}

// CurrentIdentity returns the active session email, or false when nobody is
// signed in. Store errors degrade to signed-out.
func (s *identityService) CurrentIdentity(ctx context.Context) (string, bool) {
	v, ok, err := s.store.Get(ctx, common.KeyLoggedIn)
	if err != nil {
		s.log.Error(ctx, "failed to read session", "error", err)
		return "", false
	}
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *identityService) setLogged(ctx context.Context, email string) error {
	if err := s.store.Set(ctx, common.KeyLoggedIn, email); err != nil {
		return err
	}
	s.notifier.Publish(changes.Event{Topic: changes.TopicAuth, Key: common.KeyLoggedIn})
	return nil
}

// loadUsers reads the account collection. Corrupt JSON is logged and
// treated as an empty collection rather than propagated.
func (s *identityService) loadUsers(ctx context.Context) []models.UserRecord {
	raw, ok, err := s.store.Get(ctx, common.KeyUsers)
	if err != nil {
		s.log.Error(ctx, "failed to read users", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var users []models.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Warn(ctx, "corrupt user collection, treating as empty", "error", err)
		return nil
	}
	return users
}

func (s *identityService) saveUsers(ctx context.Context, users []models.UserRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, common.KeyUsers, string(data))
}
