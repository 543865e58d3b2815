package controllers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/services"
)

func TestParseSearchParamsDefaults(t *testing.T) {
	params := ParseSearchParams(url.Values{})

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, services.DefaultPageSize, params.Limit)
	assert.Equal(t, models.SortRelevance, params.SortBy)
	assert.Empty(t, params.Query)
	assert.False(t, params.IsOpen)
	assert.False(t, params.IsFeatured)
}

func TestParseSearchParamsFull(t *testing.T) {
	params := ParseSearchParams(url.Values{
		"query":      {"halal grill"},
		"location":   {"Zagreb"},
		"cuisine":    {"Balkan"},
		"sortBy":     {"rating"},
		"priceRange": {"mid"},
		"isOpen":     {"true"},
		"isFeatured": {"true"},
		"page":       {"3"},
		"limit":      {"24"},
	})

	assert.Equal(t, "halal grill", params.Query)
	assert.Equal(t, "Zagreb", params.Location)
	assert.Equal(t, "Balkan", params.Cuisine)
	assert.Equal(t, models.SortRating, params.SortBy)
	assert.Equal(t, models.PriceMid, params.PriceRange)
	assert.True(t, params.IsOpen)
	assert.True(t, params.IsFeatured)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 24, params.Limit)
}

func TestParseSearchParamsClampsAndAliases(t *testing.T) {
	params := ParseSearchParams(url.Values{
		"q":     {"pizza"},
		"page":  {"-2"},
		"limit": {"500"},
	})

	assert.Equal(t, "pizza", params.Query)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, services.DefaultPageSize, params.Limit)
}
