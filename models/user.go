package models

import "time"

// UserProfile is the identity/authorization record stored per user.
// OnboardingCompleted gates dashboard access; Restaurant is a
// denormalized copy of the tenant record attached at onboarding commit.
type UserProfile struct {
	UID                 string      `firestore:"uid" json:"uid"`
	Email               string      `firestore:"email" json:"email"`
	DisplayName         string      `firestore:"displayName" json:"displayName"`
	OnboardingCompleted bool        `firestore:"onboardingCompleted" json:"onboardingCompleted"`
	RestaurantID        string      `firestore:"restaurantId" json:"restaurantId,omitempty"`
	Restaurant          *Restaurant `firestore:"restaurant" json:"restaurant,omitempty"`
	CreatedAt           time.Time   `firestore:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time   `firestore:"updatedAt" json:"updatedAt"`
}
