package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

// OnboardingStore is the linear 5-step wizard state machine for one
// user. Every mutation writes the serialized state to a named durable
// slot so a reload mid-wizard resumes at the same step with the same
// field values. No skipping and no jump navigation beyond SetStep's
// range guard.
type OnboardingStore struct {
	key     string
	state   models.OnboardingState
	storage StateStorage
}

// NewOnboardingStore loads the user's slot if present, otherwise
// starts at step 1 with the default weekly schedule.
func NewOnboardingStore(ctx context.Context, uid string, storage StateStorage) *OnboardingStore {
	store := &OnboardingStore{
		key:     "onboarding:" + uid,
		storage: storage,
		state: models.OnboardingState{
			Step:         models.StepAccount,
			WorkingHours: models.DefaultWorkingHours(),
		},
	}

	saved, err := storage.Load(ctx, store.key)
	if err != nil {
		utils.Logger().Warn("onboarding slot load failed", zap.String("key", store.key), zap.Error(err))
	}
	if saved != nil {
		if len(saved.WorkingHours) != 7 {
			saved.WorkingHours = models.DefaultWorkingHours()
		}
		store.state = *saved
	}
	return store
}

// State returns a copy of the current wizard state.
func (s *OnboardingStore) State() models.OnboardingState {
	return s.state
}

// SetStep jumps to a step inside the valid range; out-of-range values
// are ignored.
func (s *OnboardingStore) SetStep(ctx context.Context, step int) {
	if step < models.StepAccount || step > models.StepPlan {
		return
	}
	s.state.Step = step
	s.persist(ctx)
}

// NextStep advances by one; a no-op at step 5.
func (s *OnboardingStore) NextStep(ctx context.Context) {
	if s.state.Step >= models.StepPlan {
		return
	}
	s.state.Step++
	s.persist(ctx)
}

// PrevStep retreats by one; a no-op at step 1.
func (s *OnboardingStore) PrevStep(ctx context.Context) {
	if s.state.Step <= models.StepAccount {
		return
	}
	s.state.Step--
	s.persist(ctx)
}

// UpdateAccount replaces the step-1 field group.
func (s *OnboardingStore) UpdateAccount(ctx context.Context, account models.AccountInfo) {
	s.state.Account = account
	s.persist(ctx)
}

// UpdateLocation replaces the step-2 field group.
func (s *OnboardingStore) UpdateLocation(ctx context.Context, location models.OnboardingPlace) {
	s.state.Location = location
	s.persist(ctx)
}

// UpdateContact replaces the step-3 field group.
func (s *OnboardingStore) UpdateContact(ctx context.Context, contact models.ContactInfo) {
	s.state.Contact = contact
	s.persist(ctx)
}

// UpdateWorkingDay edits a single entry of the 7-day schedule. The
// schedule always keeps exactly 7 entries, one per weekday; the day
// name of the slot is preserved.
func (s *OnboardingStore) UpdateWorkingDay(ctx context.Context, index int, day models.WorkingDay) {
	if index < 0 || index >= len(s.state.WorkingHours) {
		return
	}
	day.Day = s.state.WorkingHours[index].Day
	s.state.WorkingHours[index] = day
	s.persist(ctx)
}

// SetPlan records the step-5 plan selection.
func (s *OnboardingStore) SetPlan(ctx context.Context, plan string) {
	s.state.SelectedPlan = plan
	s.persist(ctx)
}

// Reset clears the wizard back to defaults and empties the slot.
func (s *OnboardingStore) Reset(ctx context.Context) {
	s.state = models.OnboardingState{
		Step:         models.StepAccount,
		WorkingHours: models.DefaultWorkingHours(),
	}
	if err := s.storage.Clear(ctx, s.key); err != nil {
		utils.Logger().Warn("onboarding slot clear failed", zap.String("key", s.key), zap.Error(err))
	}
}

// FormattedData converts the accumulated state into the
// restaurant-shaped payload committed at onboarding completion.
func (s *OnboardingStore) FormattedData() models.RestaurantPayload {
	return models.RestaurantPayload{
		Name:         s.state.Account.RestaurantName,
		Slug:         utils.Slugify(s.state.Account.RestaurantName),
		Description:  s.state.Account.Description,
		CuisineTypes: s.state.Account.CuisineTypes,
		Location: models.RestaurantLocation{
			Address: s.state.Location.Address,
			City:    s.state.Location.City,
			Country: s.state.Location.Country,
			Lat:     s.state.Location.Lat,
			Lng:     s.state.Location.Lng,
		},
		Contact: models.RestaurantContact{
			Phone:   s.state.Contact.Phone,
			Email:   s.state.Contact.Email,
			Website: s.state.Contact.Website,
		},
		WorkingHours: s.state.WorkingHours,
		IsPremium:    s.state.SelectedPlan == "premium",
		CreatedAt:    time.Now().UTC(),
	}
}

func (s *OnboardingStore) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.key, &s.state); err != nil {
		utils.Logger().Warn("onboarding slot save failed", zap.String("key", s.key), zap.Error(err))
	}
}
