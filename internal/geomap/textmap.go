package geomap

import (
	"fmt"
	"strings"
)

// TextMap renders the map state as plain text for the terminal. It records
// markers and the last framing operation and prints them on Render.
type TextMap struct {
	markers []marker
	view    string
}

type marker struct {
	pos   LatLng
	popup string
}

// NewTextMap returns an empty text map at the default view.
func NewTextMap() *TextMap {
	m := &TextMap{}
	m.SetView(DefaultCenter, DefaultZoom)
	return m
}

func (m *TextMap) SetView(center LatLng, zoom int) {
	m.view = fmt.Sprintf("view %.4f,%.4f zoom %d", center.Lat, center.Lng, zoom)
}

func (m *TextMap) AddMarker(pos LatLng, popup string) {
	m.markers = append(m.markers, marker{pos: pos, popup: popup})
}

func (m *TextMap) ClearMarkers() {
	m.markers = nil
}

func (m *TextMap) FitBounds(b Bounds, padding int) {
	c := b.Center()
	m.view = fmt.Sprintf("bounds %.4f,%.4f..%.4f,%.4f (center %.4f,%.4f)",
		b.SouthWest.Lat, b.SouthWest.Lng, b.NorthEast.Lat, b.NorthEast.Lng, c.Lat, c.Lng)
}

// Render returns the textual map: the framing line followed by one line
// per marker.
func (m *TextMap) Render() string {
	var sb strings.Builder
	sb.WriteString("[map] " + m.view + "\n")
	for _, mk := range m.markers {
		fmt.Fprintf(&sb, "  * %.4f,%.4f  %s\n", mk.pos.Lat, mk.pos.Lng, mk.popup)
	}
	return sb.String()
}
