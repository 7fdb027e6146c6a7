package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ratnex/ratnex-api/internal/domain/entity"
	"github.com/ratnex/ratnex-api/internal/domain/enum"
	infraRepo "github.com/ratnex/ratnex-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetCreatesDefaults(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewSettingsService(infraRepo.NewSettingsRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	settings, err := svc.GetSettings(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, "INR", settings.Currency)
	assert.Equal(t, "Asia/Kolkata", settings.Timezone)
	assert.Equal(t, enum.WeightUnitGram, settings.DefaultWeightUnit)
	assert.True(t, settings.RateChangeAlerts)

	// A second read returns the stored row, not a fresh default
	again, err := svc.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&entity.UserSettings{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewSettingsService(infraRepo.NewSettingsRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	updated, err := svc.UpdateSettings(ctx, &UpdateSettingsInput{
		UserID:            userID,
		Language:          "hi",
		Timezone:          "Asia/Kolkata",
		Currency:          "INR",
		DefaultWeightUnit: "mg",
		RateChangeAlerts:  true,
		Theme:             "dark",
		SessionTimeout:    "60",
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", updated.Language)
	assert.Equal(t, enum.WeightUnitMilligram, updated.DefaultWeightUnit)
	assert.Equal(t, "dark", updated.Theme)

	// Unknown weight units fall back to grams
	updated, err = svc.UpdateSettings(ctx, &UpdateSettingsInput{
		UserID:            userID,
		DefaultWeightUnit: "oz",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.WeightUnitGram, updated.DefaultWeightUnit)
}
