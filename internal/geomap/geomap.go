// Package geomap defines the map collaborator used by the presentation
// layer. The real map is an external concern (a tile-rendering library);
// this package carries its operation contract, the bounds math needed to
// frame a set of markers, and a plain-text implementation for the CLI.
package geomap

import "fmt"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// Bounds is the axis-aligned box around a set of coordinates.
type Bounds struct {
	SouthWest LatLng
	NorthEast LatLng
}

// Map is the contract any map renderer must satisfy: place markers, frame
// them, and reset. Mirrors the operations of the tile-map libraries the
// web frontends use.
type Map interface {
	// SetView centers the map at center with the given zoom level.
	SetView(center LatLng, zoom int)

	// AddMarker places a marker with a popup label.
	AddMarker(pos LatLng, popup string)

	// ClearMarkers removes all markers.
	ClearMarkers()

	// FitBounds frames the given bounds with padding (in display units).
	FitBounds(b Bounds, padding int)
}

// Default framing used by the directory views.
var (
	DefaultCenter = LatLng{Lat: 10.8505, Lng: 76.2711}
)

const (
	DefaultZoom = 7
	DetailZoom  = 12

	FitPadding = 50
)

// BoundsOf computes the bounding box of points. ok is false for an empty
// input.
func BoundsOf(points []LatLng) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b = Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		if p.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = p.Lat
		}
		if p.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = p.Lng
		}
		if p.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = p.Lat
		}
		if p.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = p.Lng
		}
	}
	return b, true
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Frame applies the directory's framing policy to m: no markers resets the
// view, a single marker gets a close-up, several get fitted bounds.
func Frame(m Map, points []LatLng) {
	switch len(points) {
	case 0:
		m.SetView(DefaultCenter, DefaultZoom)
	case 1:
		m.SetView(points[0], DetailZoom)
	default:
		b, _ := BoundsOf(points)
		m.FitBounds(b, FitPadding)
	}
}

// DirectionsURL builds the external navigation link for a coordinate.
func DirectionsURL(pos LatLng) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", pos.Lat, pos.Lng)
}
