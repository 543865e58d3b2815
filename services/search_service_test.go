package services

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muizrexhepi/menyro-sub000/models"
)

func filtersOf(constraints []Constraint) []Constraint {
	var filters []Constraint
	for _, c := range constraints {
		if c.Kind == ConstraintFilter {
			filters = append(filters, c)
		}
	}
	return filters
}

func sortsOf(constraints []Constraint) []Constraint {
	var sorts []Constraint
	for _, c := range constraints {
		if c.Kind == ConstraintSort {
			sorts = append(sorts, c)
		}
	}
	return sorts
}

func TestBuildConstraintsNoFilters(t *testing.T) {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{SortBy: models.SortRelevance},
		Page:          1,
		Limit:         12,
	}

	constraints := BuildConstraints(params)

	assert.Empty(t, filtersOf(constraints))
	sorts := sortsOf(constraints)
	require.Len(t, sorts, 1)
	assert.Equal(t, "createdAt", sorts[0].Field)
	assert.Equal(t, firestore.Desc, sorts[0].Dir)
}

func TestBuildConstraintsAlwaysExactlyOneSort(t *testing.T) {
	for _, sortBy := range []string{models.SortRelevance, models.SortName, models.SortRating, models.SortDistance, "", "bogus"} {
		params := models.SearchParams{
			SearchFilters: models.SearchFilters{
				Query:      "halal grill",
				Location:   "Zagreb",
				Cuisine:    "Balkan",
				IsOpen:     true,
				IsFeatured: true,
				SortBy:     sortBy,
			},
			Page:  1,
			Limit: 12,
		}
		constraints := BuildConstraints(params)
		assert.Len(t, sortsOf(constraints), 1, "sortBy=%q", sortBy)
		// the sort constraint is always last
		assert.Equal(t, ConstraintSort, constraints[len(constraints)-1].Kind)
	}
}

func TestBuildConstraintsCuisineMembershipIsCaseSensitive(t *testing.T) {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{Cuisine: "Mexican", SortBy: models.SortRelevance},
		Page:          1,
		Limit:         12,
	}

	filters := filtersOf(BuildConstraints(params))
	require.Len(t, filters, 1)
	assert.Equal(t, "cuisineTypes", filters[0].Field)
	assert.Equal(t, "array-contains", filters[0].Op)
	assert.Equal(t, "Mexican", filters[0].Value)
}

func TestBuildConstraintsFilterOrder(t *testing.T) {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{
			Query:      "Tacos",
			Location:   "Zagreb",
			Cuisine:    "Mexican",
			IsOpen:     true,
			IsFeatured: true,
			SortBy:     models.SortRating,
		},
		Page:  1,
		Limit: 12,
	}

	filters := filtersOf(BuildConstraints(params))
	require.Len(t, filters, 5)
	assert.Equal(t, "searchKeywords", filters[0].Field)
	assert.Equal(t, []string{"tacos"}, filters[0].Value)
	assert.Equal(t, "location.city", filters[1].Field)
	assert.Equal(t, "Zagreb", filters[1].Value)
	assert.Equal(t, "cuisineTypes", filters[2].Field)
	assert.Equal(t, "isFeatured", filters[3].Field)
	assert.Equal(t, "isOpen", filters[4].Field)
}

func TestBuildConstraintsDistanceFallsBackToRecency(t *testing.T) {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{SortBy: models.SortDistance},
		Page:          1,
		Limit:         12,
	}

	sorts := sortsOf(BuildConstraints(params))
	require.Len(t, sorts, 1)
	assert.Equal(t, "createdAt", sorts[0].Field)
	assert.Equal(t, firestore.Desc, sorts[0].Dir)
}

func TestBuildConstraintsNameSortAscending(t *testing.T) {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{SortBy: models.SortName},
		Page:          1,
		Limit:         12,
	}

	sorts := sortsOf(BuildConstraints(params))
	require.Len(t, sorts, 1)
	assert.Equal(t, "name", sorts[0].Field)
	assert.Equal(t, firestore.Asc, sorts[0].Dir)
}

func TestBuildConstraintsSkipsWhitespaceQuery(t *testing.T) {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{Query: "   ", SortBy: models.SortRelevance},
		Page:          1,
		Limit:         12,
	}

	constraints := BuildConstraints(params)

	// a query with no tokens must not emit an array-contains-any
	// constraint with an empty array
	assert.Empty(t, filtersOf(constraints))
	assert.Len(t, sortsOf(constraints), 1)
}

func TestQueryTokens(t *testing.T) {
	assert.Equal(t, []string{"halal", "grill"}, QueryTokens("Halal  Grill"))
	assert.Empty(t, QueryTokens("   "))

	tokens := QueryTokens("a b c d e f g h i j k l")
	assert.Len(t, tokens, 10)
}

func TestRestaurantKeywords(t *testing.T) {
	keywords := RestaurantKeywords("Café Luna", []string{"Italian", "italian"}, []string{"Vegan"})
	assert.Equal(t, []string{"café", "luna", "italian", "vegan"}, keywords)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(15, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestNextCursorCarriesDocumentIDTiebreak(t *testing.T) {
	cursor := NextCursor(4.5, "r-17")
	require.NotNil(t, cursor)
	// sort value first, then the document ID, matching the query's
	// sort-then-ID ordering so tied sort values cannot skip records
	assert.Equal(t, []interface{}{4.5, "r-17"}, cursor.SortValues)

	assert.Nil(t, NextCursor(nil, "r-17"))
	assert.Nil(t, NextCursor(4.5, ""))
}

func TestSortField(t *testing.T) {
	assert.Equal(t, "name", SortField(models.SortName))
	assert.Equal(t, "rating", SortField(models.SortRating))
	assert.Equal(t, "createdAt", SortField(models.SortDistance))
	assert.Equal(t, "createdAt", SortField(models.SortRelevance))
}
