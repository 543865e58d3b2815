package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/services"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

type OnboardingController struct {
	OnboardingService *services.OnboardingService
}

// NewOnboardingController initializes OnboardingController with the
// wizard state storage.
func NewOnboardingController(storage services.StateStorage) *OnboardingController {
	return &OnboardingController{
		OnboardingService: services.NewOnboardingService(storage),
	}
}

func (h *OnboardingController) store(c *gin.Context) (*services.OnboardingStore, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return nil, false
	}
	return h.OnboardingService.Store(c, userID.(string)), true
}

// GetState returns the caller's wizard state, resumed from the slot.
func (h *OnboardingController) GetState(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Onboarding state fetched successfully", store.State())
}

func (h *OnboardingController) NextStep(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	store.NextStep(c)
	utils.SuccessResponse(c, http.StatusOK, "Step advanced", store.State())
}

func (h *OnboardingController) PrevStep(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	store.PrevStep(c)
	utils.SuccessResponse(c, http.StatusOK, "Step retreated", store.State())
}

type SetStepRequest struct {
	Step int `json:"step" binding:"required"`
}

func (h *OnboardingController) SetStep(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var req SetStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store.SetStep(c, req.Step)
	utils.SuccessResponse(c, http.StatusOK, "Step updated", store.State())
}

func (h *OnboardingController) UpdateAccount(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var account models.AccountInfo
	if err := c.ShouldBindJSON(&account); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store.UpdateAccount(c, account)
	utils.SuccessResponse(c, http.StatusOK, "Account info updated", store.State())
}

func (h *OnboardingController) UpdateLocation(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var location models.OnboardingPlace
	if err := c.ShouldBindJSON(&location); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store.UpdateLocation(c, location)
	utils.SuccessResponse(c, http.StatusOK, "Location updated", store.State())
}

func (h *OnboardingController) UpdateContact(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var contact models.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store.UpdateContact(c, contact)
	utils.SuccessResponse(c, http.StatusOK, "Contact updated", store.State())
}

type UpdateWorkingDayRequest struct {
	Index int               `json:"index"`
	Day   models.WorkingDay `json:"day" binding:"required"`
}

func (h *OnboardingController) UpdateWorkingDay(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var req UpdateWorkingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store.UpdateWorkingDay(c, req.Index, req.Day)
	utils.SuccessResponse(c, http.StatusOK, "Working day updated", store.State())
}

type SetPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

func (h *OnboardingController) SetPlan(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	var req SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store.SetPlan(c, req.Plan)
	utils.SuccessResponse(c, http.StatusOK, "Plan selected", store.State())
}

// Complete commits the wizard: creates the tenant record and marks the
// profile onboarded in one batch.
func (h *OnboardingController) Complete(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	store := h.OnboardingService.Store(c, userID.(string))
	restaurant, err := h.OnboardingService.Complete(c, userID.(string), store)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Onboarding completed successfully", restaurant)
}

// Reset abandons the wizard and clears the slot.
func (h *OnboardingController) Reset(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	store.Reset(c)
	utils.SuccessResponse(c, http.StatusOK, "Onboarding state reset", store.State())
}
