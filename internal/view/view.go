// Package view renders attractions for the terminal: result cards, detail
// blocks, and the placeholder messages shown for empty or unavailable data.
package view

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/touristguide/internal/models"
)

// Placeholder messages. Missing data is a user-visible notice, never an
// error that stops the session.
const (
	MsgLoading      = "Loading attractions... please wait."
	MsgNotFound     = "Attraction not found."
	MsgNoFavorites  = "You have no favorites yet. Add some from the attraction details!"
	MsgFavsMissing  = "Your favorites are currently not available."
	MsgNoResults    = "No attractions match your search."
	MsgSignInNeeded = "Please sign in to use favorites."
)

// Card renders the one-paragraph summary of an attraction.
func Card(a models.Attraction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s\n", a.ID, a.Title)
	fmt.Fprintf(&sb, "    %s — rating %.1f\n", a.City, a.Rating)
	return sb.String()
}

// Cards renders a result list, or the empty-result placeholder.
func Cards(list []models.Attraction) string {
	if len(list) == 0 {
		return MsgNoResults + "\n"
	}
	var sb strings.Builder
	for _, a := range list {
		sb.WriteString(Card(a))
	}
	return sb.String()
}

// Detail renders the full record of a single attraction.
func Detail(a models.Attraction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", a.Title)
	fmt.Fprintf(&sb, "Location: %s\n", a.City)
	if a.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", a.Description)
	}
	fmt.Fprintf(&sb, "Rating: %.1f\n", a.Rating)
	if a.Image != "" {
		fmt.Fprintf(&sb, "Image: %s\n", a.Image)
	}
	return sb.String()
}
