package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

// facetSampleCap bounds the aggregation scan. Counts degrade beyond
// this cap; facets are a sample, not an incrementally maintained index.
const facetSampleCap = 1000

const facetCacheKey = "filters:options"
const facetCacheTTL = 5 * time.Minute

type FilterService struct {
	FirestoreClient *firestore.Client
	RedisClient     *redis.Client
}

// NewFilterService initializes FilterService with Firestore and Redis
func NewFilterService() *FilterService {
	return &FilterService{
		FirestoreClient: database.GetFirestoreClient(),
		RedisClient:     database.GetRedisClient(),
	}
}

// Options returns the aggregated facets for the search UI. On any
// backend failure it returns empty-but-well-formed options; callers
// must treat empty facets as "unavailable", not "no data exists".
func (s *FilterService) Options(ctx context.Context) models.FilterOptions {
	if cached, ok := s.cachedOptions(ctx); ok {
		return cached
	}

	options := models.FilterOptions{
		Cuisines:    []models.FilterOption{},
		Cities:      []models.FilterOption{},
		PriceRanges: StaticPriceRanges(),
	}

	cuisineCounts := make(map[string]int)
	cityCounts := make(map[string]int)

	iter := s.FirestoreClient.Collection("restaurants").Limit(facetSampleCap).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utils.Logger().Error("facet scan failed", zap.Error(err))
			return options
		}

		data := doc.Data()
		if cuisines, ok := data["cuisineTypes"].([]interface{}); ok {
			for _, cuisine := range cuisines {
				if name, ok := cuisine.(string); ok && name != "" {
					cuisineCounts[name]++
				}
			}
		}
		if location, ok := data["location"].(map[string]interface{}); ok {
			if city, ok := location["city"].(string); ok && city != "" {
				cityCounts[city]++
			}
		}
	}

	options.Cuisines = sortedFacet(cuisineCounts)
	options.Cities = sortedFacet(cityCounts)

	s.cacheOptions(ctx, options)
	return options
}

// StaticPriceRanges is the fixed price-band enumeration; price facets
// are not derived from the collection.
func StaticPriceRanges() []models.FilterOption {
	return []models.FilterOption{
		{Value: models.PriceBudget, Label: "Budget"},
		{Value: models.PriceMid, Label: "Mid-range"},
		{Value: models.PriceUpscale, Label: "Upscale"},
	}
}

// sortedFacet turns a tally into options sorted descending by count,
// with value order as a stable tiebreak.
func sortedFacet(counts map[string]int) []models.FilterOption {
	facet := make([]models.FilterOption, 0, len(counts))
	for value, count := range counts {
		facet = append(facet, models.FilterOption{Value: value, Label: value, Count: count})
	}
	sort.Slice(facet, func(i, j int) bool {
		if facet[i].Count != facet[j].Count {
			return facet[i].Count > facet[j].Count
		}
		return facet[i].Value < facet[j].Value
	})
	return facet
}

func (s *FilterService) cachedOptions(ctx context.Context) (models.FilterOptions, bool) {
	if s.RedisClient == nil {
		return models.FilterOptions{}, false
	}
	raw, err := s.RedisClient.Get(ctx, facetCacheKey).Result()
	if err != nil {
		return models.FilterOptions{}, false
	}
	var options models.FilterOptions
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return models.FilterOptions{}, false
	}
	return options, true
}

func (s *FilterService) cacheOptions(ctx context.Context, options models.FilterOptions) {
	if s.RedisClient == nil {
		return
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := s.RedisClient.Set(ctx, facetCacheKey, raw, facetCacheTTL).Err(); err != nil {
		utils.Logger().Warn("facet cache write failed", zap.Error(err))
	}
}
