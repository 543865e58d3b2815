package models

import "time"

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation links a user to a restaurant for a date and party size.
type Reservation struct {
	ID           string    `firestore:"id" json:"id"`
	RestaurantID string    `firestore:"restaurantId" json:"restaurantId"`
	UserID       string    `firestore:"userId" json:"userId"`
	GuestName    string    `firestore:"guestName" json:"guestName"`
	GuestPhone   string    `firestore:"guestPhone" json:"guestPhone"`
	Date         time.Time `firestore:"date" json:"date"`
	PartySize    int       `firestore:"partySize" json:"partySize"`
	Note         string    `firestore:"note" json:"note,omitempty"`
	Status       string    `firestore:"status" json:"status"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}
