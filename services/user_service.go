package services

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type UserService struct {
	FirestoreClient *firestore.Client
}

// NewUserService initializes UserService with FirestoreClient
func NewUserService() *UserService {
	return &UserService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetUserProfile fetches the identity/authorization record for a user.
func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	doc, err := s.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusNotFound, "User profile not found")
	}

	var profile models.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, utils.WrapError(http.StatusInternalServerError, "parse_failed", "Failed to parse user profile", err)
	}
	if profile.UID == "" {
		profile.UID = doc.Ref.ID
	}
	return &profile, nil
}

// UpdateDisplayName edits the profile's display name.
func (s *UserService) UpdateDisplayName(ctx context.Context, userID, displayName string) error {
	_, err := s.FirestoreClient.Collection("users").Doc(userID).Update(ctx, []firestore.Update{
		{Path: "displayName", Value: displayName},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		return utils.WrapError(http.StatusInternalServerError, "update_failed", "Failed to update user profile", err)
	}
	return nil
}
