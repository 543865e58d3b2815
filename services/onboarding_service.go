package services

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/type/latlng"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type OnboardingService struct {
	FirestoreClient *firestore.Client
	Storage         StateStorage
}

// NewOnboardingService initializes OnboardingService with Firestore
// and the wizard state storage.
func NewOnboardingService(storage StateStorage) *OnboardingService {
	return &OnboardingService{
		FirestoreClient: database.GetFirestoreClient(),
		Storage:         storage,
	}
}

// Store loads the calling user's wizard store.
func (s *OnboardingService) Store(ctx context.Context, uid string) *OnboardingStore {
	return NewOnboardingStore(ctx, uid, s.Storage)
}

// Complete provisions the tenant: it creates the restaurant record and
// marks the user's profile onboarded, attaching the tenant ID and a
// denormalized copy of the record. Both writes go through a single
// WriteBatch so a partial commit cannot leave a tenant without an
// owner link. The wizard slot is cleared afterwards.
func (s *OnboardingService) Complete(ctx context.Context, uid string, store *OnboardingStore) (*models.Restaurant, error) {
	payload := store.FormattedData()
	if payload.Name == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Restaurant name is required")
	}
	if payload.Location.City == "" || payload.Location.Address == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Restaurant location is required")
	}
	if payload.Contact.Email == "" && payload.Contact.Phone == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Restaurant contact is required")
	}

	restaurantID := uuid.NewString()
	now := payload.CreatedAt

	restaurant := models.Restaurant{
		ID:             restaurantID,
		Slug:           payload.Slug,
		Name:           payload.Name,
		Description:    payload.Description,
		Location:       payload.Location,
		Contact:        payload.Contact,
		WorkingHours:   payload.WorkingHours,
		CuisineTypes:   payload.CuisineTypes,
		SearchKeywords: RestaurantKeywords(payload.Name, payload.CuisineTypes, nil),
		IsPremium:      payload.IsPremium,
		OwnerID:        uid,
		CreatedAt:      now.Format(time.RFC3339),
		UpdatedAt:      now.Format(time.RFC3339),
	}

	restaurantDoc := map[string]interface{}{
		"id":             restaurant.ID,
		"slug":           restaurant.Slug,
		"name":           restaurant.Name,
		"description":    restaurant.Description,
		"location":       restaurant.Location,
		"geo":            &latlng.LatLng{Latitude: payload.Location.Lat, Longitude: payload.Location.Lng},
		"geohash":        geohash.Encode(payload.Location.Lat, payload.Location.Lng),
		"contact":        restaurant.Contact,
		"workingHours":   restaurant.WorkingHours,
		"cuisineTypes":   restaurant.CuisineTypes,
		"tags":           []string{},
		"searchKeywords": restaurant.SearchKeywords,
		"rating":         0.0,
		"isOpen":         false,
		"isFeatured":     false,
		"isPremium":      restaurant.IsPremium,
		"ownerId":        uid,
		"createdAt":      now,
		"updatedAt":      now,
	}

	restaurantRef := s.FirestoreClient.Collection("restaurants").Doc(restaurantID)
	userRef := s.FirestoreClient.Collection("users").Doc(uid)

	batch := s.FirestoreClient.Batch()
	batch.Set(restaurantRef, restaurantDoc)
	batch.Update(userRef, []firestore.Update{
		{Path: "onboardingCompleted", Value: true},
		{Path: "restaurantId", Value: restaurantID},
		{Path: "restaurant", Value: restaurantDoc},
		{Path: "updatedAt", Value: now},
	})

	if _, err := batch.Commit(ctx); err != nil {
		utils.Logger().Error("onboarding commit failed",
			zap.String("uid", uid),
			zap.String("restaurantId", restaurantID),
			zap.Error(err))
		return nil, utils.WrapError(http.StatusInternalServerError, "onboarding_failed", "Failed to complete onboarding", err)
	}

	store.Reset(ctx)
	return &restaurant, nil
}
