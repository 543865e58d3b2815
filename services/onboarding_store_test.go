package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muizrexhepi/menyro-sub000/models"
)

func TestOnboardingStoreDefaults(t *testing.T) {
	store := NewOnboardingStore(context.Background(), "u1", NewMemoryStateStorage())

	state := store.State()
	assert.Equal(t, models.StepAccount, state.Step)
	require.Len(t, state.WorkingHours, 7)
	assert.Equal(t, "monday", state.WorkingHours[0].Day)
	assert.Equal(t, "09:00", state.WorkingHours[0].Open)
	assert.Equal(t, "10:00", state.WorkingHours[5].Open)
	assert.Equal(t, "15:00", state.WorkingHours[5].Close)
	assert.True(t, state.WorkingHours[6].Closed)
}

func TestOnboardingStoreStepBounds(t *testing.T) {
	ctx := context.Background()
	store := NewOnboardingStore(ctx, "u1", NewMemoryStateStorage())

	// prevStep is a no-op at step 1
	store.PrevStep(ctx)
	assert.Equal(t, 1, store.State().Step)

	for i := 0; i < 10; i++ {
		store.NextStep(ctx)
	}
	// nextStep is a no-op at step 5
	assert.Equal(t, 5, store.State().Step)

	store.SetStep(ctx, 0)
	assert.Equal(t, 5, store.State().Step)
	store.SetStep(ctx, 6)
	assert.Equal(t, 5, store.State().Step)
	store.SetStep(ctx, 2)
	assert.Equal(t, 2, store.State().Step)
}

func TestOnboardingStoreResumesFromSlot(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStateStorage()

	store := NewOnboardingStore(ctx, "u1", storage)
	store.UpdateAccount(ctx, models.AccountInfo{RestaurantName: "Delicious Bistro"})
	store.NextStep(ctx)
	store.UpdateLocation(ctx, models.OnboardingPlace{Address: "Ilica 1", City: "Zagreb", Country: "HR"})
	store.NextStep(ctx)

	// a reload mid-wizard resumes at the same step with the same values
	resumed := NewOnboardingStore(ctx, "u1", storage)
	state := resumed.State()
	assert.Equal(t, 3, state.Step)
	assert.Equal(t, "Delicious Bistro", state.Account.RestaurantName)
	assert.Equal(t, "Zagreb", state.Location.City)

	// slots are per user
	other := NewOnboardingStore(ctx, "u2", storage)
	assert.Equal(t, 1, other.State().Step)
}

func TestOnboardingStoreResumesFromRedisSlot(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	storage := NewRedisStateStorage(client)

	store := NewOnboardingStore(ctx, "u1", storage)
	store.UpdateContact(ctx, models.ContactInfo{Email: "owner@bistro.hr", Phone: "+385911111111"})
	store.SetPlan(ctx, "premium")

	resumed := NewOnboardingStore(ctx, "u1", storage)
	state := resumed.State()
	assert.Equal(t, "owner@bistro.hr", state.Contact.Email)
	assert.Equal(t, "premium", state.SelectedPlan)

	resumed.Reset(ctx)
	cleared := NewOnboardingStore(ctx, "u1", storage)
	assert.Equal(t, 1, cleared.State().Step)
	assert.Empty(t, cleared.State().SelectedPlan)
}

func TestOnboardingStoreUpdateWorkingDay(t *testing.T) {
	ctx := context.Background()
	store := NewOnboardingStore(ctx, "u1", NewMemoryStateStorage())

	store.UpdateWorkingDay(ctx, 6, models.WorkingDay{Day: "someday", Open: "12:00", Close: "20:00"})

	state := store.State()
	require.Len(t, state.WorkingHours, 7)
	// the slot's day name is preserved
	assert.Equal(t, "sunday", state.WorkingHours[6].Day)
	assert.Equal(t, "12:00", state.WorkingHours[6].Open)
	assert.False(t, state.WorkingHours[6].Closed)

	// out-of-range edits are ignored
	store.UpdateWorkingDay(ctx, 7, models.WorkingDay{Open: "00:00"})
	assert.Len(t, store.State().WorkingHours, 7)
}

func TestOnboardingStoreFormattedData(t *testing.T) {
	ctx := context.Background()
	store := NewOnboardingStore(ctx, "u1", NewMemoryStateStorage())

	store.UpdateAccount(ctx, models.AccountInfo{
		RestaurantName: "Delicious Bistro!",
		CuisineTypes:   []string{"Balkan"},
	})
	store.UpdateLocation(ctx, models.OnboardingPlace{Address: "Ilica 1", City: "Zagreb", Country: "HR", Lat: 45.81, Lng: 15.98})
	store.UpdateContact(ctx, models.ContactInfo{Phone: "+385911111111", Email: "owner@bistro.hr"})
	store.SetPlan(ctx, "premium")

	payload := store.FormattedData()
	assert.Equal(t, "Delicious Bistro!", payload.Name)
	assert.Equal(t, "delicious-bistro", payload.Slug)
	assert.Equal(t, "Zagreb", payload.Location.City)
	assert.True(t, payload.IsPremium)
	assert.Len(t, payload.WorkingHours, 7)
	assert.False(t, payload.CreatedAt.IsZero())

	store.SetPlan(ctx, "basic")
	assert.False(t, store.FormattedData().IsPremium)
}
