package models

// Restaurant is the tenant entity: one business account and its data.
// Owned by exactly one user; created once at onboarding completion and
// mutated afterwards through the dashboard.
type Restaurant struct {
	ID             string             `firestore:"id" json:"id"`
	Slug           string             `firestore:"slug" json:"slug"`
	Name           string             `firestore:"name" json:"name"`
	Description    string             `firestore:"description" json:"description,omitempty"`
	Location       RestaurantLocation `firestore:"location" json:"location"`
	Contact        RestaurantContact  `firestore:"contact" json:"contact"`
	WorkingHours   []WorkingDay       `firestore:"workingHours" json:"workingHours"`
	CuisineTypes   []string           `firestore:"cuisineTypes" json:"cuisineTypes"`
	Tags           []string           `firestore:"tags" json:"tags,omitempty"`
	SearchKeywords []string           `firestore:"searchKeywords" json:"-"`
	Menu           *Menu              `firestore:"menu" json:"menu,omitempty"`
	Rating         float64            `firestore:"rating" json:"rating"`
	IsOpen         bool               `firestore:"isOpen" json:"isOpen"`
	IsFeatured     bool               `firestore:"isFeatured" json:"isFeatured"`
	IsPremium      bool               `firestore:"isPremium" json:"isPremium"`
	OwnerID        string             `firestore:"ownerId" json:"ownerId"`
	CreatedAt      string             `firestore:"-" json:"createdAt"`
	UpdatedAt      string             `firestore:"-" json:"updatedAt"`
}

type RestaurantLocation struct {
	Address string  `firestore:"address" json:"address"`
	City    string  `firestore:"city" json:"city"`
	Country string  `firestore:"country" json:"country"`
	Lat     float64 `firestore:"lat" json:"lat"`
	Lng     float64 `firestore:"lng" json:"lng"`
}

type RestaurantContact struct {
	Phone   string `firestore:"phone" json:"phone"`
	Email   string `firestore:"email" json:"email"`
	Website string `firestore:"website" json:"website,omitempty"`
}

// WorkingDay is one entry of the 7-day weekly schedule.
type WorkingDay struct {
	Day    string `firestore:"day" json:"day"`
	Open   string `firestore:"open" json:"open"`
	Close  string `firestore:"close" json:"close"`
	Closed bool   `firestore:"closed" json:"closed"`
}

// Menu is optionally embedded in the restaurant document.
type Menu struct {
	Categories []MenuCategory `firestore:"categories" json:"categories"`
}

type MenuCategory struct {
	Name  string     `firestore:"name" json:"name"`
	Items []MenuItem `firestore:"items" json:"items"`
}

type MenuItem struct {
	Name        string  `firestore:"name" json:"name"`
	Description string  `firestore:"description" json:"description,omitempty"`
	Price       float64 `firestore:"price" json:"price"`
	Available   bool    `firestore:"available" json:"available"`
}
