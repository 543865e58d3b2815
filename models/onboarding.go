package models

import "time"

// Onboarding wizard steps, in order.
const (
	StepAccount  = 1
	StepLocation = 2
	StepContact  = 3
	StepHours    = 4
	StepPlan     = 5
)

// OnboardingState is the ephemeral wizard state, serialized as-is to a
// durable slot so a reload resumes the same step with the same values.
type OnboardingState struct {
	Step         int             `json:"step"`
	Account      AccountInfo     `json:"account"`
	Location     OnboardingPlace `json:"location"`
	Contact      ContactInfo     `json:"contact"`
	WorkingHours []WorkingDay    `json:"workingHours"`
	SelectedPlan string          `json:"selectedPlan"`
}

type AccountInfo struct {
	RestaurantName string   `json:"restaurantName"`
	OwnerName      string   `json:"ownerName"`
	Description    string   `json:"description"`
	CuisineTypes   []string `json:"cuisineTypes"`
}

type OnboardingPlace struct {
	Address string  `json:"address"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// RestaurantPayload is the restaurant-shaped bundle produced at commit.
type RestaurantPayload struct {
	Name         string
	Slug         string
	Description  string
	CuisineTypes []string
	Location     RestaurantLocation
	Contact      RestaurantContact
	WorkingHours []WorkingDay
	IsPremium    bool
	CreatedAt    time.Time
}

// DefaultWorkingHours returns the 7-entry weekly schedule the user
// edits in step 4: Mon-Fri 09:00-17:00, Sat 10:00-15:00, Sun closed.
func DefaultWorkingHours() []WorkingDay {
	return []WorkingDay{
		{Day: "monday", Open: "09:00", Close: "17:00"},
		{Day: "tuesday", Open: "09:00", Close: "17:00"},
		{Day: "wednesday", Open: "09:00", Close: "17:00"},
		{Day: "thursday", Open: "09:00", Close: "17:00"},
		{Day: "friday", Open: "09:00", Close: "17:00"},
		{Day: "saturday", Open: "10:00", Close: "15:00"},
		{Day: "sunday", Closed: true},
	}
}
