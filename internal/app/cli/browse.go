package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/touristguide/internal/geomap"
	"github.com/dmitrijs2005/touristguide/internal/models"
	"github.com/dmitrijs2005/touristguide/internal/view"
)

// catalogWait bounds how long a command waits for the catalog before
// showing the loading placeholder. Variable so tests can shorten it.
var catalogWait = 2 * time.Second

// waitCatalog blocks briefly for the catalog. When the data has not
// arrived yet the loading placeholder is shown and false returned; the
// command simply does nothing, the user can retry.
func (a *App) waitCatalog(ctx context.Context) bool {
	waitCtx, cancel := context.WithTimeout(ctx, catalogWait)
	defer cancel()
	if err := a.catalog.WaitReady(waitCtx); err != nil {
		fmt.Fprintln(a.out, view.MsgLoading)
		return false
	}
	return true
}

// List renders every attraction as cards plus the overview map.
func (a *App) List(ctx context.Context) error {
	if !a.waitCatalog(ctx) {
		return nil
	}
	a.renderDirectory(a.catalog.All())
	return nil
}

// Search filters the directory by title or city and renders the result.
func (a *App) Search(ctx context.Context, query string) error {
	if !a.waitCatalog(ctx) {
		return nil
	}
	a.renderDirectory(a.catalog.FilterByText(query))
	return nil
}

// Show renders one attraction in detail with a close-up map and a
// directions link.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.waitCatalog(ctx) {
		return nil
	}

	attraction, ok := a.catalog.FindByID(id)
	if !ok {
		fmt.Fprintln(a.out, view.MsgNotFound)
		return nil
	}

	fmt.Fprint(a.out, view.Detail(attraction))

	pos := geomap.LatLng{Lat: attraction.Lat, Lng: attraction.Lng}
	m := geomap.NewTextMap()
	m.AddMarker(pos, fmt.Sprintf("%s, %s", attraction.Title, attraction.City))
	geomap.Frame(m, []geomap.LatLng{pos})
	fmt.Fprint(a.out, m.Render())

	fmt.Fprintf(a.out, "Directions: %s\n", geomap.DirectionsURL(pos))
	return nil
}

// renderDirectory prints cards followed by the marker map for list.
func (a *App) renderDirectory(list []models.Attraction) {
	fmt.Fprint(a.out, view.Cards(list))
	if len(list) == 0 {
		return
	}

	m := geomap.NewTextMap()
	points := make([]geomap.LatLng, 0, len(list))
	for _, att := range list {
		p := geomap.LatLng{Lat: att.Lat, Lng: att.Lng}
		m.AddMarker(p, fmt.Sprintf("%s, %s", att.Title, att.City))
		points = append(points, p)
	}
	geomap.Frame(m, points)
	fmt.Fprint(a.out, m.Render())
}
