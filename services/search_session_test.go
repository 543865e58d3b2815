package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muizrexhepi/menyro-sub000/models"
)

// fakeSearcher records issued params and serves canned pages.
type fakeSearcher struct {
	mu      sync.Mutex
	calls   []models.SearchParams
	cursors []*models.SearchCursor
	fail    bool
	block   chan struct{}
	total   int
	limit   int
}

func (f *fakeSearcher) Search(ctx context.Context, params models.SearchParams, cursor *models.SearchCursor) (*models.SearchResult, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.cursors = append(f.cursors, cursor)
	call := len(f.calls)
	f.mu.Unlock()

	if f.fail {
		return nil, errors.New("backend unavailable")
	}

	limit := f.limit
	if limit == 0 {
		limit = params.Limit
	}
	restaurants := make([]models.Restaurant, limit)
	for i := range restaurants {
		restaurants[i] = models.Restaurant{ID: fmt.Sprintf("r-%d-%d", call, i)}
	}
	return &models.SearchResult{
		Restaurants: restaurants,
		Total:       f.total,
		TotalPages:  TotalPages(f.total, params.Limit),
		CurrentPage: params.Page,
		HasNextPage: len(restaurants) == params.Limit,
		HasPrevPage: params.Page > 1,
		NextCursor:  &models.SearchCursor{SortValues: []interface{}{call}},
	}, nil
}

func (f *fakeSearcher) issued() []models.SearchParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SearchParams(nil), f.calls...)
}

func TestPagedSessionResetsPageOnFilterChange(t *testing.T) {
	searcher := &fakeSearcher{total: 100}
	session := NewPagedSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{Location: "Zagreb"}))
	require.NoError(t, session.ChangePage(context.Background(), 3))
	assert.Equal(t, 3, session.Params().Page)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{Location: "Zagreb", Cuisine: "Balkan"}))

	issued := searcher.issued()
	require.Len(t, issued, 3)
	assert.Equal(t, 1, issued[2].Page)
	assert.Equal(t, 1, session.Params().Page)
}

func TestPagedSessionReplacesResults(t *testing.T) {
	searcher := &fakeSearcher{total: 24}
	session := NewPagedSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	first := session.Result().Restaurants
	require.NoError(t, session.ChangePage(context.Background(), 2))
	second := session.Result().Restaurants

	assert.Len(t, second, 12)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestPagedSessionClearAllRestoresDefaults(t *testing.T) {
	searcher := &fakeSearcher{total: 5, limit: 5}
	session := NewPagedSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{
		Query: "tacos", Location: "Zagreb", Cuisine: "Mexican", SortBy: models.SortRating, IsOpen: true,
	}))
	require.NoError(t, session.ClearAll(context.Background()))

	issued := searcher.issued()
	require.Len(t, issued, 2)
	cleared := issued[1]
	assert.Equal(t, models.SearchFilters{SortBy: models.SortRelevance}, cleared.SearchFilters)
	assert.Equal(t, 1, cleared.Page)
	assert.Equal(t, 12, cleared.Limit)
}

func TestPagedSessionDropsOverlappingSearches(t *testing.T) {
	searcher := &fakeSearcher{total: 12, block: make(chan struct{})}
	session := NewPagedSession(searcher, 12)

	done := make(chan error, 1)
	go func() {
		done <- session.Search(context.Background(), models.SearchFilters{Location: "Zagreb"})
	}()

	// wait for the first search to claim the in-flight slot
	require.Eventually(t, func() bool {
		session.mu.Lock()
		defer session.mu.Unlock()
		return session.searching
	}, time.Second, time.Millisecond)

	// overlapping call returns immediately without issuing a request
	require.NoError(t, session.Search(context.Background(), models.SearchFilters{Location: "Split"}))

	close(searcher.block)
	require.NoError(t, <-done)

	issued := searcher.issued()
	require.Len(t, issued, 1)
	assert.Equal(t, "Zagreb", issued[0].Location)
}

func TestPagedSessionKeepsResultsOnError(t *testing.T) {
	searcher := &fakeSearcher{total: 12}
	session := NewPagedSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	previous := session.Result()

	searcher.fail = true
	assert.Error(t, session.Search(context.Background(), models.SearchFilters{Cuisine: "Thai"}))

	assert.Equal(t, "search failed", session.Err())
	assert.Same(t, previous, session.Result())

	searcher.fail = false
	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	assert.Empty(t, session.Err())
}

func TestPagedSessionDebouncedQuery(t *testing.T) {
	searcher := &fakeSearcher{total: 12}
	session := NewPagedSession(searcher, 12)
	session.queryDelay = 5 * time.Millisecond

	session.SetQuery(context.Background(), "p")
	session.SetQuery(context.Background(), "pi")
	session.SetQuery(context.Background(), "pizza")

	require.Eventually(t, func() bool {
		return len(searcher.issued()) == 1
	}, time.Second, time.Millisecond)

	issued := searcher.issued()
	assert.Equal(t, "pizza", issued[0].Query)
	assert.Equal(t, 1, issued[0].Page)
}

func TestInfiniteSessionAppendsPages(t *testing.T) {
	searcher := &fakeSearcher{total: 36}
	session := NewInfiniteSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	require.Len(t, session.Restaurants(), 12)
	assert.True(t, session.HasMore())

	require.NoError(t, session.LoadMore(context.Background()))
	require.Len(t, session.Restaurants(), 24)

	// pages never repeat records
	seen := map[string]bool{}
	for _, r := range session.Restaurants() {
		assert.False(t, seen[r.ID], "duplicate %s", r.ID)
		seen[r.ID] = true
	}

	// the second request carried the cursor from the first page
	searcher.mu.Lock()
	defer searcher.mu.Unlock()
	require.Len(t, searcher.cursors, 2)
	assert.Nil(t, searcher.cursors[0])
	assert.NotNil(t, searcher.cursors[1])
}

func TestInfiniteSessionLoadMoreNoopWhenExhausted(t *testing.T) {
	searcher := &fakeSearcher{total: 5, limit: 5}
	session := NewInfiniteSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	assert.False(t, session.HasMore())

	require.NoError(t, session.LoadMore(context.Background()))
	assert.Len(t, searcher.issued(), 1)
}

func TestInfiniteSessionLoadMoreErrorKeepsPage(t *testing.T) {
	searcher := &fakeSearcher{total: 36}
	session := NewInfiniteSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	require.Equal(t, 1, session.Params().Page)

	searcher.fail = true
	assert.Error(t, session.LoadMore(context.Background()))

	// a failed load does not advance the canonical page or touch the list
	assert.Equal(t, 1, session.Params().Page)
	assert.Len(t, session.Restaurants(), 12)
	assert.Equal(t, "search failed", session.Err())

	searcher.fail = false
	require.NoError(t, session.LoadMore(context.Background()))
	assert.Equal(t, 2, session.Params().Page)
	assert.Len(t, session.Restaurants(), 24)
	assert.Empty(t, session.Err())
}

func TestInfiniteSessionSearchReplacesList(t *testing.T) {
	searcher := &fakeSearcher{total: 36}
	session := NewInfiniteSession(searcher, 12)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{}))
	require.NoError(t, session.LoadMore(context.Background()))
	require.Len(t, session.Restaurants(), 24)

	require.NoError(t, session.Search(context.Background(), models.SearchFilters{Cuisine: "Thai"}))
	assert.Len(t, session.Restaurants(), 12)
}
