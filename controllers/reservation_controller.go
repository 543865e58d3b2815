package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/services"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type ReservationController struct {
	ReservationService *services.ReservationService
	RestaurantService  *services.RestaurantService
}

// NewReservationController initializes ReservationController
func NewReservationController() *ReservationController {
	return &ReservationController{
		ReservationService: services.NewReservationService(),
		RestaurantService:  services.NewRestaurantService(),
	}
}

type CreateReservationRequest struct {
	RestaurantID string    `json:"restaurantId" binding:"required"`
	GuestName    string    `json:"guestName" binding:"required"`
	GuestPhone   string    `json:"guestPhone"`
	Date         time.Time `json:"date" binding:"required"`
	PartySize    int       `json:"partySize" binding:"required"`
	Note         string    `json:"note"`
}

func (h *ReservationController) CreateReservation(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reservation, err := h.ReservationService.CreateReservation(c, &models.Reservation{
		RestaurantID: req.RestaurantID,
		UserID:       userID.(string),
		GuestName:    req.GuestName,
		GuestPhone:   req.GuestPhone,
		Date:         req.Date,
		PartySize:    req.PartySize,
		Note:         req.Note,
	})
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetMyReservations lists the caller's reservations as a guest.
func (h *ReservationController) GetMyReservations(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	reservations, err := h.ReservationService.GetReservationsByUser(c, userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reservations fetched successfully", reservations)
}

// GetRestaurantReservations lists a tenant's reservations for the
// owner dashboard.
func (h *ReservationController) GetRestaurantReservations(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}
	restaurantID := c.Param("id")

	restaurant, err := h.RestaurantService.GetRestaurantByID(c, restaurantID)
	if err != nil {
		c.Error(err)
		return
	}
	if restaurant.OwnerID != userID.(string) {
		utils.ErrorResponse(c, http.StatusForbidden, "Not the owner of this restaurant")
		return
	}

	reservations, err := h.ReservationService.GetReservationsByRestaurant(c, restaurantID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reservations fetched successfully", reservations)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReservationController) UpdateReservationStatus(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}
	restaurantID := c.Param("id")
	reservationID := c.Param("reservationId")

	restaurant, err := h.RestaurantService.GetRestaurantByID(c, restaurantID)
	if err != nil {
		c.Error(err)
		return
	}
	if restaurant.OwnerID != userID.(string) {
		utils.ErrorResponse(c, http.StatusForbidden, "Not the owner of this restaurant")
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.ReservationService.UpdateReservationStatus(c, reservationID, req.Status); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reservation updated successfully", nil)
}
