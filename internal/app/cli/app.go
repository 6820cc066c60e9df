package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/touristguide/internal/catalog"
	"github.com/dmitrijs2005/touristguide/internal/changes"
	"github.com/dmitrijs2005/touristguide/internal/common"
	"github.com/dmitrijs2005/touristguide/internal/config"
	"github.com/dmitrijs2005/touristguide/internal/logging"
	"github.com/dmitrijs2005/touristguide/internal/repositories/localstore"
	"github.com/dmitrijs2005/touristguide/internal/services"
)

// App bundles the tourist guide services behind the REPL commands.
type App struct {
	config    *config.Config
	identity  services.IdentityService
	favorites services.FavoritesService
	catalog   *catalog.Catalog
	notifier  *changes.Notifier
	watcher   *localstore.Watcher
	log       logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the profile store, wires the services, and seeds the demo
// account on a fresh profile.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()
	notifier := changes.NewNotifier()

	store, db, err := localstore.Open(ctx, c.StorePath, notifier)
	if err != nil {
		log.Error(ctx, "error initializing store", "error", err)
		return nil, err
	}

	identity := services.NewIdentityService(store, notifier, log)
	if err := identity.EnsureDemoUser(ctx); err != nil {
		db.Close()
		return nil, err
	}
	favorites := services.NewFavoritesService(store, identity, notifier, log)

	watcher, err := localstore.NewWatcher(c.StorePath, notifier, log)
	if err != nil {
		// cross-process sync degrades gracefully; the session itself
		// still works
		log.Warn(ctx, "store watcher unavailable", "error", err)
	}

	return &App{
		config:    c,
		identity:  identity,
		favorites: favorites,
		catalog:   catalog.New(log),
		notifier:  notifier,
		watcher:   watcher,
		log:       log,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the background catalog load, the cross-process watcher, and
// the REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.subscribeReconciler()

	if a.watcher != nil {
		go a.watcher.Run(ctx)
	}

	// The catalog loads asynchronously, like the original static fetch;
	// commands that need it wait on its ready channel.
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, a.config.CatalogTimeout)
		defer cancel()
		_ = a.catalog.Load(loadCtx, a.catalogSource())
	}()

	fmt.Fprintln(a.out, "Welcome to the tourist guide (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) catalogSource() catalog.Source {
	if a.config.CatalogURL != "" {
		return catalog.HTTPSource{
			URL:    a.config.CatalogURL,
			Client: &http.Client{Timeout: a.config.CatalogTimeout},
		}
	}
	return catalog.FileSource{Path: a.config.CatalogPath}
}

// subscribeReconciler maps external store changes back onto the domain
// signals. Writes made by this process already signal through the
// services; an external write arrives with an unknown key, so both domain
// topics are re-emitted and subscribers re-read their state.
func (a *App) subscribeReconciler() {
	a.notifier.Subscribe(changes.TopicStorage, func(e changes.Event) {
		if !e.External {
			return
		}
		switch {
		case e.Key == common.KeyLoggedIn:
			a.notifier.Publish(changes.Event{Topic: changes.TopicAuth, Key: e.Key, External: true})
		case strings.HasPrefix(e.Key, common.KeyFavoritesLegacy):
			a.notifier.Publish(changes.Event{Topic: changes.TopicFavorites, Key: e.Key, External: true})
		case e.Key == "":
			a.notifier.Publish(changes.Event{Topic: changes.TopicAuth, External: true})
			a.notifier.Publish(changes.Event{Topic: changes.TopicFavorites, External: true})
		}
	})
}

func (a *App) isLoggedIn() bool {
	_, ok := a.identity.CurrentIdentity(context.Background())
	return ok
}

// getStatus renders the prompt decoration: the signed-in user's name, or
// nothing for a guest.
func (a *App) getStatus() string {
	ctx := context.Background()
	email, ok := a.identity.CurrentIdentity(ctx)
	if !ok {
		return ""
	}
	name := a.displayName(ctx, email)
	return fmt.Sprintf("(%s)", name)
}

// displayName resolves the account name for an email, defaulting to
// "Traveler" when the record is missing.
func (a *App) displayName(ctx context.Context, email string) string {
	for _, u := range a.identity.ListUsers(ctx) {
		if u.EmailEquals(email) && u.Name != "" {
			return u.Name
		}
	}
	return "Traveler"
}
