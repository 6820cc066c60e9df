package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/touristguide/internal/models"
)

func TestCards(t *testing.T) {
	list := []models.Attraction{
		{ID: "1", Title: "Fort Kochi", City: "Kochi", Rating: 4.4},
		{ID: "2", Title: "Varkala Beach", City: "Thiruvananthapuram", Rating: 4.5},
	}

	out := Cards(list)
	assert.Contains(t, out, "[1] Fort Kochi")
	assert.Contains(t, out, "Kochi — rating 4.4")
	assert.Contains(t, out, "[2] Varkala Beach")
}

func TestCards_EmptyListShowsPlaceholder(t *testing.T) {
	assert.Contains(t, Cards(nil), MsgNoResults)
}

func TestDetail(t *testing.T) {
	a := models.Attraction{
		ID: "3", Title: "Athirappilly Falls", City: "Thrissur",
		Description: "Largest waterfall in Kerala.", Rating: 4.6,
		Image: "https://example.com/falls.jpg",
	}

	out := Detail(a)
	assert.Contains(t, out, "Athirappilly Falls")
	assert.Contains(t, out, "Location: Thrissur")
	assert.Contains(t, out, "Description: Largest waterfall in Kerala.")
	assert.Contains(t, out, "Rating: 4.6")
	assert.Contains(t, out, "Image: https://example.com/falls.jpg")
}

func TestDetail_OmitsEmptyOptionalFields(t *testing.T) {
	out := Detail(models.Attraction{ID: "1", Title: "X", City: "Y"})
	assert.NotContains(t, out, "Description:")
	assert.NotContains(t, out, "Image:")
}
