package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/services"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

// maxFeedPages caps how many pages the SSE feed streams per request.
const maxFeedPages = 5

type SearchController struct {
	SearchService *services.SearchService
	FilterService *services.FilterService
}

// NewSearchController initializes SearchController
func NewSearchController() *SearchController {
	return &SearchController{
		SearchService: services.NewSearchService(),
		FilterService: services.NewFilterService(),
	}
}

// ParseSearchParams extracts and normalizes restaurant search filters
// from the URL query. Page defaults to 1, limit to the default page size.
func ParseSearchParams(query url.Values) models.SearchParams {
	params := models.SearchParams{
		SearchFilters: models.SearchFilters{
			Query:      query.Get("query"),
			Location:   query.Get("location"),
			Cuisine:    query.Get("cuisine"),
			SortBy:     query.Get("sortBy"),
			PriceRange: query.Get("priceRange"),
			IsOpen:     query.Get("isOpen") == "true",
			IsFeatured: query.Get("isFeatured") == "true",
		},
	}
	if params.Query == "" {
		params.Query = query.Get("q")
	}
	if params.SortBy == "" {
		params.SortBy = models.SortRelevance
	}

	params.Page, _ = strconv.Atoi(query.Get("page"))
	if params.Page < 1 {
		params.Page = 1
	}
	params.Limit, _ = strconv.Atoi(query.Get("limit"))
	if params.Limit < 1 || params.Limit > 50 {
		params.Limit = services.DefaultPageSize
	}
	return params
}

func (h *SearchController) SearchRestaurants(c *gin.Context) {
	params := ParseSearchParams(c.Request.URL.Query())

	result, err := h.SearchService.Search(c, params, nil)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurants fetched successfully", result)
}

func (h *SearchController) GetFilterOptions(c *gin.Context) {
	options := h.FilterService.Options(c)
	utils.SuccessResponse(c, http.StatusOK, "Filter options fetched successfully", options)
}

// StreamRestaurantFeed streams successive result pages over SSE, one
// event per page, using an infinite-scroll session.
func (h *SearchController) StreamRestaurantFeed(c *gin.Context) {
	params := ParseSearchParams(c.Request.URL.Query())

	pages, _ := strconv.Atoi(c.Query("pages"))
	if pages < 1 || pages > maxFeedPages {
		pages = maxFeedPages
	}

	// Set response headers for SSE
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	session := services.NewInfiniteSession(h.SearchService, params.Limit)

	if err := session.Search(c, params.SearchFilters); err != nil {
		c.SSEvent("feed_error", gin.H{"statusCode": http.StatusInternalServerError, "message": session.Err()})
		c.Writer.Flush()
		return
	}
	c.SSEvent("restaurants_page", gin.H{"restaurants": session.Restaurants(), "total": session.Total()})
	c.Writer.Flush()

	for page := 2; page <= pages && session.HasMore(); page++ {
		before := len(session.Restaurants())
		if err := session.LoadMore(c); err != nil {
			c.SSEvent("feed_error", gin.H{"statusCode": http.StatusInternalServerError, "message": session.Err()})
			c.Writer.Flush()
			return
		}
		c.SSEvent("restaurants_page", gin.H{"restaurants": session.Restaurants()[before:], "total": session.Total()})
		c.Writer.Flush()
	}

	c.SSEvent("done_feed", gin.H{"statusCode": http.StatusOK, "message": "Feed completed", "data": nil})
	c.Writer.Flush()
}
