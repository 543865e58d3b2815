package services

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type RestaurantService struct {
	FirestoreClient *firestore.Client
}

// NewRestaurantService initializes RestaurantService with Firestore
func NewRestaurantService() *RestaurantService {
	return &RestaurantService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetRestaurantByID fetches one restaurant document.
func (s *RestaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	doc, err := s.FirestoreClient.Collection("restaurants").Doc(restaurantID).Get(ctx)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusNotFound, "Restaurant not found")
	}

	restaurant, err := restaurantFromDoc(doc)
	if err != nil {
		return nil, utils.WrapError(http.StatusInternalServerError, "parse_failed", "Failed to parse restaurant", err)
	}
	return &restaurant, nil
}

// GetRestaurantBySlug resolves the public restaurant page URL.
func (s *RestaurantService) GetRestaurantBySlug(ctx context.Context, slug string) (*models.Restaurant, error) {
	iter := s.FirestoreClient.Collection("restaurants").
		Where("slug", "==", slug).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, utils.NewCustomError(http.StatusNotFound, "Restaurant not found")
	}
	if err != nil {
		utils.Logger().Error("slug lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil, utils.WrapError(http.StatusInternalServerError, "lookup_failed", "Failed to fetch restaurant", err)
	}

	restaurant, err := restaurantFromDoc(doc)
	if err != nil {
		return nil, utils.WrapError(http.StatusInternalServerError, "parse_failed", "Failed to parse restaurant", err)
	}
	return &restaurant, nil
}

// GetRestaurantsByOwner lists the tenants owned by a user. One per
// user today, but the query keeps the dashboard honest about it.
func (s *RestaurantService) GetRestaurantsByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error) {
	iter := s.FirestoreClient.Collection("restaurants").
		Where("ownerId", "==", ownerID).
		Documents(ctx)
	defer iter.Stop()

	restaurants := []models.Restaurant{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utils.Logger().Error("owner lookup failed", zap.String("ownerId", ownerID), zap.Error(err))
			return nil, utils.WrapError(http.StatusInternalServerError, "lookup_failed", "Failed to fetch restaurants", err)
		}

		restaurant, err := restaurantFromDoc(doc)
		if err != nil {
			return nil, utils.WrapError(http.StatusInternalServerError, "parse_failed", "Failed to parse restaurant", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

// UpdateMenu replaces the embedded menu. Menu items do not participate
// in keyword search, so keywords are not rebuilt here.
func (s *RestaurantService) UpdateMenu(ctx context.Context, restaurantID string, menu *models.Menu) error {
	return s.update(ctx, restaurantID, []firestore.Update{
		{Path: "menu", Value: menu},
	})
}

// UpdateWorkingHours replaces the weekly schedule. The schedule must
// keep exactly 7 entries.
func (s *RestaurantService) UpdateWorkingHours(ctx context.Context, restaurantID string, hours []models.WorkingDay) error {
	if len(hours) != 7 {
		return utils.NewCustomError(http.StatusBadRequest, "Working hours must have exactly 7 entries")
	}
	return s.update(ctx, restaurantID, []firestore.Update{
		{Path: "workingHours", Value: hours},
	})
}

// UpdateDetails edits the descriptive dashboard settings and rebuilds
// the search keyword set from the new values.
func (s *RestaurantService) UpdateDetails(ctx context.Context, restaurantID, name, description string, cuisineTypes, tags []string) error {
	return s.update(ctx, restaurantID, []firestore.Update{
		{Path: "name", Value: name},
		{Path: "description", Value: description},
		{Path: "cuisineTypes", Value: cuisineTypes},
		{Path: "tags", Value: tags},
		{Path: "searchKeywords", Value: RestaurantKeywords(name, cuisineTypes, tags)},
	})
}

func (s *RestaurantService) update(ctx context.Context, restaurantID string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})
	_, err := s.FirestoreClient.Collection("restaurants").Doc(restaurantID).Update(ctx, updates)
	if err != nil {
		utils.Logger().Error("restaurant update failed", zap.String("restaurantId", restaurantID), zap.Error(err))
		return utils.WrapError(http.StatusInternalServerError, "update_failed", "Failed to update restaurant", err)
	}
	return nil
}
