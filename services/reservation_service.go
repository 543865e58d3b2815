package services

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type ReservationService struct {
	FirestoreClient   *firestore.Client
	RestaurantService *RestaurantService
}

// NewReservationService initializes a new ReservationService
func NewReservationService() *ReservationService {
	return &ReservationService{
		FirestoreClient:   database.GetFirestoreClient(),
		RestaurantService: NewRestaurantService(),
	}
}

// CreateReservation books a table. The restaurant must exist; status
// starts pending until the owner confirms it from the dashboard.
func (s *ReservationService) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if reservation.PartySize < 1 {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Party size must be at least 1")
	}
	if reservation.Date.Before(time.Now()) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Reservation date must be in the future")
	}

	if _, err := s.RestaurantService.GetRestaurantByID(ctx, reservation.RestaurantID); err != nil {
		return nil, err
	}

	reservation.ID = uuid.NewString()
	reservation.Status = models.ReservationPending
	reservation.CreatedAt = time.Now().UTC()

	_, err := s.FirestoreClient.Collection("reservations").Doc(reservation.ID).Set(ctx, reservation)
	if err != nil {
		utils.Logger().Error("reservation write failed", zap.String("restaurantId", reservation.RestaurantID), zap.Error(err))
		return nil, utils.WrapError(http.StatusInternalServerError, "reservation_failed", "Failed to create reservation", err)
	}
	return reservation, nil
}

// GetReservationsByRestaurant lists a tenant's reservations for the
// owner dashboard, newest first.
func (s *ReservationService) GetReservationsByRestaurant(ctx context.Context, restaurantID string) ([]models.Reservation, error) {
	iter := s.FirestoreClient.Collection("reservations").
		Where("restaurantId", "==", restaurantID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return s.collect(ctx, iter)
}

// GetReservationsByUser lists the reservations a guest has made.
func (s *ReservationService) GetReservationsByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	iter := s.FirestoreClient.Collection("reservations").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return s.collect(ctx, iter)
}

// UpdateReservationStatus moves a reservation between pending,
// confirmed and cancelled.
func (s *ReservationService) UpdateReservationStatus(ctx context.Context, reservationID, status string) error {
	switch status {
	case models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled:
	default:
		return utils.NewCustomError(http.StatusBadRequest, "Unknown reservation status")
	}

	_, err := s.FirestoreClient.Collection("reservations").Doc(reservationID).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	if err != nil {
		utils.Logger().Error("reservation status update failed", zap.String("reservationId", reservationID), zap.Error(err))
		return utils.WrapError(http.StatusInternalServerError, "reservation_failed", "Failed to update reservation", err)
	}
	return nil
}

func (s *ReservationService) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]models.Reservation, error) {
	defer iter.Stop()

	reservations := []models.Reservation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utils.Logger().Error("reservation query failed", zap.Error(err))
			return nil, utils.WrapError(http.StatusInternalServerError, "reservation_failed", "Failed to fetch reservations", err)
		}

		var reservation models.Reservation
		if err := doc.DataTo(&reservation); err != nil {
			return nil, utils.WrapError(http.StatusInternalServerError, "parse_failed", "Failed to parse reservation", err)
		}
		if reservation.ID == "" {
			reservation.ID = doc.Ref.ID
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}
