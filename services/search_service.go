package services

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

// DefaultPageSize bounds the result set when no limit is given.
const DefaultPageSize = 12

// maxKeywordTokens caps query tokens; array-contains-any accepts at most 10 values.
const maxKeywordTokens = 10

type ConstraintKind int

const (
	ConstraintFilter ConstraintKind = iota
	ConstraintSort
)

// Constraint is one backend query constraint. Filter constraints carry
// Field/Op/Value; the single sort constraint carries Field/Dir.
type Constraint struct {
	Kind  ConstraintKind
	Field string
	Op    string
	Value interface{}
	Dir   firestore.Direction
}

// QueryTokens lowercases and splits free text into at most ten tokens
// for the keyword-overlap filter. This is crude keyword matching, not
// ranked relevance: no substrings, no fuzziness.
func QueryTokens(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) > maxKeywordTokens {
		fields = fields[:maxKeywordTokens]
	}
	return fields
}

// RestaurantKeywords builds the precomputed lowercase token set stored
// on each restaurant document: name words plus cuisine and feature tags.
func RestaurantKeywords(name string, cuisineTypes, tags []string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	add := func(token string) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	for _, word := range strings.Fields(name) {
		add(word)
	}
	for _, cuisine := range cuisineTypes {
		add(cuisine)
	}
	for _, tag := range tags {
		add(tag)
	}
	return keywords
}

// BuildConstraints translates search params into an ordered constraint
// list. Pure function. Filter constraints keep a fixed order (it only
// matters for composite-index construction in Firestore); exactly one
// sort constraint is appended last. Note cuisine is matched
// case-sensitively: only the free-text query is normalized.
func BuildConstraints(params models.SearchParams) []Constraint {
	var constraints []Constraint

	// Firestore rejects array-contains-any with an empty array, so a
	// whitespace-only query must not produce a keyword constraint.
	if tokens := QueryTokens(params.Query); len(tokens) > 0 {
		constraints = append(constraints, Constraint{
			Kind:  ConstraintFilter,
			Field: "searchKeywords",
			Op:    "array-contains-any",
			Value: tokens,
		})
	}
	if params.Location != "" {
		constraints = append(constraints, Constraint{
			Kind:  ConstraintFilter,
			Field: "location.city",
			Op:    "==",
			Value: params.Location,
		})
	}
	if params.Cuisine != "" {
		constraints = append(constraints, Constraint{
			Kind:  ConstraintFilter,
			Field: "cuisineTypes",
			Op:    "array-contains",
			Value: params.Cuisine,
		})
	}
	if params.IsFeatured {
		constraints = append(constraints, Constraint{
			Kind:  ConstraintFilter,
			Field: "isFeatured",
			Op:    "==",
			Value: true,
		})
	}
	if params.IsOpen {
		constraints = append(constraints, Constraint{
			Kind:  ConstraintFilter,
			Field: "isOpen",
			Op:    "==",
			Value: true,
		})
	}

	switch params.SortBy {
	case models.SortName:
		constraints = append(constraints, Constraint{Kind: ConstraintSort, Field: "name", Dir: firestore.Asc})
	case models.SortRating:
		constraints = append(constraints, Constraint{Kind: ConstraintSort, Field: "rating", Dir: firestore.Desc})
	case models.SortDistance:
		// Geospatial ordering is not implemented; distance degrades to
		// recency until a real geo sort is scoped.
		constraints = append(constraints, Constraint{Kind: ConstraintSort, Field: "createdAt", Dir: firestore.Desc})
	default:
		constraints = append(constraints, Constraint{Kind: ConstraintSort, Field: "createdAt", Dir: firestore.Desc})
	}

	return constraints
}

// TotalPages is ceil(total/limit); zero totals mean zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// SortField returns the document field the given sort order uses.
func SortField(sortBy string) string {
	switch sortBy {
	case models.SortName:
		return "name"
	case models.SortRating:
		return "rating"
	default:
		return "createdAt"
	}
}

type SearchService struct {
	FirestoreClient *firestore.Client
}

// NewSearchService initializes SearchService with Firestore
func NewSearchService() *SearchService {
	return &SearchService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// Search executes one page of the restaurant query plus an independent
// count query over the same filters. Two reads per call; the count is
// not cached. Backend errors are logged in detail and rethrown as a
// generic "search failed".
func (s *SearchService) Search(ctx context.Context, params models.SearchParams, cursor *models.SearchCursor) (*models.SearchResult, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultPageSize
	}
	if params.Page < 1 {
		params.Page = 1
	}

	constraints := BuildConstraints(params)
	query := s.applyConstraints(s.FirestoreClient.Collection("restaurants").Query, constraints)
	// Document ID is a secondary sort; without it StartAfter skips every
	// record sharing the primary sort value (rating ties, equal timestamps).
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if cursor != nil && len(cursor.SortValues) > 0 {
		query = query.StartAfter(cursor.SortValues...)
	} else if params.Page > 1 {
		query = query.Offset((params.Page - 1) * params.Limit)
	}
	query = query.Limit(params.Limit)

	restaurants := make([]models.Restaurant, 0, params.Limit)
	var lastSortValue interface{}
	var lastDocID string
	sortField := SortField(params.SortBy)

	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, s.searchError("restaurant page query failed", err)
		}

		restaurant, err := restaurantFromDoc(doc)
		if err != nil {
			return nil, s.searchError("restaurant document mapping failed", err)
		}
		restaurants = append(restaurants, restaurant)
		lastSortValue = doc.Data()[sortField]
		lastDocID = doc.Ref.ID
	}

	total, err := s.count(ctx, constraints)
	if err != nil {
		return nil, s.searchError("restaurant count query failed", err)
	}

	result := &models.SearchResult{
		Restaurants: restaurants,
		Total:       total,
		TotalPages:  TotalPages(total, params.Limit),
		CurrentPage: params.Page,
		HasNextPage: len(restaurants) == params.Limit,
		HasPrevPage: params.Page > 1,
	}
	result.NextCursor = NextCursor(lastSortValue, lastDocID)
	return result, nil
}

// NextCursor points at the last record of a page. It carries the sort
// value and the document ID, matching the query's sort-then-ID order,
// so the next page resumes exactly after that record.
func NextCursor(sortValue interface{}, docID string) *models.SearchCursor {
	if sortValue == nil || docID == "" {
		return nil
	}
	return &models.SearchCursor{SortValues: []interface{}{sortValue, docID}}
}

func (s *SearchService) applyConstraints(query firestore.Query, constraints []Constraint) firestore.Query {
	for _, c := range constraints {
		switch c.Kind {
		case ConstraintFilter:
			query = query.Where(c.Field, c.Op, c.Value)
		case ConstraintSort:
			query = query.OrderBy(c.Field, c.Dir)
		}
	}
	return query
}

// count runs the aggregation count over the filter constraints only;
// limit, cursor and ordering do not apply to totals.
func (s *SearchService) count(ctx context.Context, constraints []Constraint) (int, error) {
	query := s.FirestoreClient.Collection("restaurants").Query
	for _, c := range constraints {
		if c.Kind == ConstraintFilter {
			query = query.Where(c.Field, c.Op, c.Value)
		}
	}

	results, err := query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	value, ok := results["total"]
	if !ok {
		return 0, nil
	}
	return int(value.(*firestorepb.Value).GetIntegerValue()), nil
}

func (s *SearchService) searchError(detail string, err error) error {
	utils.Logger().Error("search failed", zap.String("detail", detail), zap.Error(err))
	return utils.WrapError(http.StatusInternalServerError, "search_failed", "search failed", err)
}

// restaurantFromDoc maps a raw document into a Restaurant, normalizing
// timestamp fields to RFC3339 strings and defaulting a missing
// updatedAt to createdAt.
func restaurantFromDoc(doc *firestore.DocumentSnapshot) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := doc.DataTo(&restaurant); err != nil {
		return models.Restaurant{}, err
	}
	if restaurant.ID == "" {
		restaurant.ID = doc.Ref.ID
	}

	data := doc.Data()
	createdAt, _ := data["createdAt"].(time.Time)
	updatedAt, ok := data["updatedAt"].(time.Time)
	if !ok {
		updatedAt = createdAt
	}
	if !createdAt.IsZero() {
		restaurant.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	}
	if !updatedAt.IsZero() {
		restaurant.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
	}
	return restaurant, nil
}
