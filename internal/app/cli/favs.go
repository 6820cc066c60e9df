package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/touristguide/internal/common"
	"github.com/dmitrijs2005/touristguide/internal/models"
	"github.com/dmitrijs2005/touristguide/internal/view"
)

// Favorites renders the signed-in user's favorites with their own map.
//
// Opening the view while signed out does not fail: the guard notice is
// shown and the sign-in prompt opens immediately, matching the guarded
// navigation of the original pages. If the user completes the sign-in the
// favorites render right away.
func (a *App) Favorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, view.MsgSignInNeeded)
		if err := a.Login(ctx); err != nil {
			return err
		}
		if !a.isLoggedIn() {
			return nil
		}
	}
	if !a.waitCatalog(ctx) {
		return nil
	}

	ids := a.favorites.List(ctx)
	if len(ids) == 0 {
		fmt.Fprintln(a.out, view.MsgNoFavorites)
		return nil
	}

	// dangling ids (attraction gone from the catalog) are skipped, not
	// treated as an error
	var list []models.Attraction
	for _, id := range ids {
		if att, ok := a.catalog.FindByID(id); ok {
			list = append(list, att)
		}
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, view.MsgFavsMissing)
		return nil
	}

	a.renderDirectory(list)
	return nil
}

// AddFavorite adds an attraction to the active identity's favorites.
func (a *App) AddFavorite(ctx context.Context, id string) error {
	if !a.waitCatalog(ctx) {
		return nil
	}
	if _, ok := a.catalog.FindByID(id); !ok {
		fmt.Fprintln(a.out, view.MsgNotFound)
		return nil
	}

	err := a.favorites.Add(ctx, id)
	switch {
	case errors.Is(err, common.ErrNoSession):
		fmt.Fprintln(a.out, "Please sign in to add favorites.")
		return nil
	case errors.Is(err, common.ErrAlreadyFavorite):
		fmt.Fprintln(a.out, "Already in favorites.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(a.out, "Added to favorites!")
	return nil
}

// RemoveFavorite removes an attraction from the favorites. Removing an id
// that is not there is a quiet success.
func (a *App) RemoveFavorite(ctx context.Context, id string) error {
	if err := a.favorites.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Removed from favorites.")
	return nil
}
