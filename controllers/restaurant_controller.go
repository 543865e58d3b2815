package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/services"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type RestaurantController struct {
	RestaurantService *services.RestaurantService
	UserService       *services.UserService
}

func NewRestaurantController() *RestaurantController {
	return &RestaurantController{
		RestaurantService: services.NewRestaurantService(),
		UserService:       services.NewUserService(),
	}
}

// GetRestaurantBySlug serves the public restaurant page.
func (h *RestaurantController) GetRestaurantBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Slug is required")
		return
	}

	restaurant, err := h.RestaurantService.GetRestaurantBySlug(c, slug)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant fetched successfully", restaurant)
}

// GetMyRestaurants lists the caller's tenants for the dashboard.
func (h *RestaurantController) GetMyRestaurants(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	restaurants, err := h.RestaurantService.GetRestaurantsByOwner(c, userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurants fetched successfully", restaurants)
}

type UpdateMenuRequest struct {
	Menu models.Menu `json:"menu" binding:"required"`
}

func (h *RestaurantController) UpdateMenu(c *gin.Context) {
	restaurantID, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.RestaurantService.UpdateMenu(c, restaurantID, &req.Menu); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu updated successfully", nil)
}

type UpdateWorkingHoursRequest struct {
	WorkingHours []models.WorkingDay `json:"workingHours" binding:"required"`
}

func (h *RestaurantController) UpdateWorkingHours(c *gin.Context) {
	restaurantID, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.RestaurantService.UpdateWorkingHours(c, restaurantID, req.WorkingHours); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Working hours updated successfully", nil)
}

type UpdateDetailsRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	CuisineTypes []string `json:"cuisineTypes"`
	Tags         []string `json:"tags"`
}

func (h *RestaurantController) UpdateDetails(c *gin.Context) {
	restaurantID, ok := h.authorizeOwner(c)
	if !ok {
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.RestaurantService.UpdateDetails(c, restaurantID, req.Name, req.Description, req.CuisineTypes, req.Tags); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant updated successfully", nil)
}

// authorizeOwner checks the caller completed onboarding and owns the
// restaurant in the path. Answers with the restaurant ID when allowed.
func (h *RestaurantController) authorizeOwner(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return "", false
	}
	restaurantID := c.Param("id")
	if restaurantID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Restaurant id is required")
		return "", false
	}

	profile, err := h.UserService.GetUserProfile(c, userID.(string))
	if err != nil {
		c.Error(err)
		return "", false
	}
	if !profile.OnboardingCompleted {
		utils.ErrorResponse(c, http.StatusForbidden, "Onboarding must be completed first")
		return "", false
	}

	restaurant, err := h.RestaurantService.GetRestaurantByID(c, restaurantID)
	if err != nil {
		c.Error(err)
		return "", false
	}
	if restaurant.OwnerID != userID.(string) {
		utils.ErrorResponse(c, http.StatusForbidden, "Not the owner of this restaurant")
		return "", false
	}
	return restaurantID, true
}
