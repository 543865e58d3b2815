package services

import (
	"context"
	"sync"
	"time"

	"github.com/muizrexhepi/menyro-sub000/models"
)

// Debounce windows for free-text inputs, so a request is not fired per
// keystroke.
const (
	QueryDebounce    = 300 * time.Millisecond
	LocationDebounce = 200 * time.Millisecond
)

// searchFailedMessage is the only error detail a session surfaces; the
// underlying cause is logged by the execution layer.
const searchFailedMessage = "search failed"

// Searcher is what a session needs from the execution layer.
type Searcher interface {
	Search(ctx context.Context, params models.SearchParams, cursor *models.SearchCursor) (*models.SearchResult, error)
}

// sessionState is the shared canonical state of a search session.
// At most one search is in flight per session: calls arriving while
// searching is set are dropped, not cancelled-and-replaced. seq grows
// monotonically per issued search so a cancel-and-replace upgrade only
// needs to start comparing it against responses.
type sessionState struct {
	mu        sync.Mutex
	params    models.SearchParams
	errMsg    string
	searching bool
	seq       uint64

	queryTimer    *time.Timer
	locationTimer *time.Timer
	queryDelay    time.Duration
	locationDelay time.Duration
}

// begin claims the in-flight slot. It reports false when a search is
// already running, in which case the caller must return immediately.
func (st *sessionState) begin(params models.SearchParams) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.searching {
		return false
	}
	st.searching = true
	st.seq++
	st.params = params
	return true
}

func (st *sessionState) defaultParams(limit int) models.SearchParams {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return models.SearchParams{
		SearchFilters: models.SearchFilters{SortBy: models.SortRelevance},
		Page:          1,
		Limit:         limit,
	}
}

func normalizeFilters(filters models.SearchFilters) models.SearchFilters {
	if filters.SortBy == "" {
		filters.SortBy = models.SortRelevance
	}
	return filters
}

// PagedSession owns the canonical search state for a paged view: every
// completed query replaces the displayed result set.
type PagedSession struct {
	sessionState
	searcher Searcher
	result   *models.SearchResult
}

// NewPagedSession builds a paged session with the given page size.
func NewPagedSession(searcher Searcher, limit int) *PagedSession {
	s := &PagedSession{searcher: searcher}
	s.params = s.defaultParams(limit)
	s.queryDelay = QueryDebounce
	s.locationDelay = LocationDebounce
	return s
}

// Search applies a new filter set. Changing criteria invalidates the
// pagination position, so the page always resets to 1.
func (s *PagedSession) Search(ctx context.Context, filters models.SearchFilters) error {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	params.SearchFilters = normalizeFilters(filters)
	params.Page = 1
	return s.run(ctx, params)
}

// ChangePage re-queries with the same filters at the given page.
func (s *PagedSession) ChangePage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	params.Page = page
	return s.run(ctx, params)
}

// ClearAll resets every filter to its default and re-queries, which
// reproduces the default relevance-sorted result set.
func (s *PagedSession) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	params := s.defaultParams(s.params.Limit)
	s.mu.Unlock()
	return s.run(ctx, params)
}

// SetQuery updates the free-text query after the debounce window. The
// context must outlive the window.
func (s *PagedSession) SetQuery(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filters := s.params.SearchFilters
	filters.Query = text
	if s.queryTimer != nil {
		s.queryTimer.Stop()
	}
	s.queryTimer = time.AfterFunc(s.queryDelay, func() {
		s.Search(ctx, filters)
	})
}

// SetLocation updates the location filter after the debounce window.
func (s *PagedSession) SetLocation(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filters := s.params.SearchFilters
	filters.Location = text
	if s.locationTimer != nil {
		s.locationTimer.Stop()
	}
	s.locationTimer = time.AfterFunc(s.locationDelay, func() {
		s.Search(ctx, filters)
	})
}

func (s *PagedSession) run(ctx context.Context, params models.SearchParams) error {
	if !s.begin(params) {
		return nil
	}

	result, err := s.searcher.Search(ctx, params, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searching = false
	if err != nil {
		// Previous results stay visible behind the message.
		s.errMsg = searchFailedMessage
		return err
	}
	s.errMsg = ""
	s.result = result
	return nil
}

// Result returns the last successful result, nil before the first search.
func (s *PagedSession) Result() *models.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the surfaced error message, empty when the last search succeeded.
func (s *PagedSession) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Params returns the canonical search params.
func (s *PagedSession) Params() models.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// InfiniteSession owns the search state for an infinite-scroll view:
// Search replaces the list, LoadMore appends the next page via a
// cursor pointing at the last received record.
type InfiniteSession struct {
	sessionState
	searcher    Searcher
	restaurants []models.Restaurant
	cursor      *models.SearchCursor
	hasMore     bool
	total       int
}

// NewInfiniteSession builds an infinite-scroll session with the given page size.
func NewInfiniteSession(searcher Searcher, limit int) *InfiniteSession {
	s := &InfiniteSession{searcher: searcher}
	s.params = s.defaultParams(limit)
	return s
}

// Search starts a fresh list for the given filters.
func (s *InfiniteSession) Search(ctx context.Context, filters models.SearchFilters) error {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	params.SearchFilters = normalizeFilters(filters)
	params.Page = 1

	if !s.begin(params) {
		return nil
	}
	result, err := s.searcher.Search(ctx, params, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searching = false
	if err != nil {
		s.errMsg = searchFailedMessage
		return err
	}
	s.errMsg = ""
	s.restaurants = result.Restaurants
	s.cursor = result.NextCursor
	s.hasMore = result.HasNextPage
	s.total = result.Total
	return nil
}

// LoadMore appends the next page. A no-op when the list is exhausted
// or a search is already in flight.
func (s *InfiniteSession) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMore || s.cursor == nil {
		s.mu.Unlock()
		return nil
	}
	params := s.params
	cursor := s.cursor
	s.mu.Unlock()
	next := params
	next.Page++

	if !s.begin(next) {
		return nil
	}
	result, err := s.searcher.Search(ctx, next, cursor)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searching = false
	if err != nil {
		// The page advance is only adopted on success; a failed load
		// must not drift CurrentPage or HasPrevPage.
		s.params.Page = params.Page
		s.errMsg = searchFailedMessage
		return err
	}
	s.errMsg = ""
	s.restaurants = append(s.restaurants, result.Restaurants...)
	s.cursor = result.NextCursor
	s.hasMore = result.HasNextPage
	s.total = result.Total
	return nil
}

// Restaurants returns the accumulated list.
func (s *InfiniteSession) Restaurants() []models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurants
}

// HasMore reports whether another page is expected.
func (s *InfiniteSession) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// Total returns the count reported by the last query.
func (s *InfiniteSession) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Params returns the canonical search params.
func (s *InfiniteSession) Params() models.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Err returns the surfaced error message, empty when the last search succeeded.
func (s *InfiniteSession) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
