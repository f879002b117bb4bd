package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
)

func TestCreateCountryNormalizesCode(t *testing.T) {
	env := newTestEnv(t, 100)

	result, err := env.catalog.CreateCountry(context.Background(), &command.CreateCountryCommand{
		Code: "be",
		Name: "Belgium",
	})
	require.NoError(t, err)
	assert.Equal(t, "BE", result.Result.Code)

	_, err = env.catalog.CreateCountry(context.Background(), &command.CreateCountryCommand{
		Code: "BE",
		Name: "Belgium again",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestCreateCountryValidation(t *testing.T) {
	env := newTestEnv(t, 100)

	_, err := env.catalog.CreateCountry(context.Background(), &command.CreateCountryCommand{
		Code: "BEL",
		Name: "Belgium",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateAndListTowns(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	for _, cmd := range []command.CreateTownCommand{
		{Name: "Brussels", CountryCode: "be", Latitude: 50.85, Longitude: 4.35},
		{Name: "Amsterdam", CountryCode: "NL", Latitude: 52.37, Longitude: 4.90},
	} {
		c := cmd
		result, err := env.catalog.CreateTown(ctx, &c)
		require.NoError(t, err)
		require.NotZero(t, result.Result.ID)
	}

	belgian, err := env.catalog.ListTowns(ctx, "be")
	require.NoError(t, err)
	require.Len(t, belgian, 1)
	assert.Equal(t, "Brussels", belgian[0].Name)
	assert.Equal(t, "BE", belgian[0].CountryCode)

	all, err := env.catalog.ListTowns(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateTownRejectsBadCoordinates(t *testing.T) {
	env := newTestEnv(t, 100)

	_, err := env.catalog.CreateTown(context.Background(), &command.CreateTownCommand{
		Name:        "Nowhere",
		CountryCode: "BE",
		Latitude:    95,
		Longitude:   4.35,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestToolImagesAndReviews(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	owner := env.register(t, "owner@example.com", "owner")
	reviewer := env.register(t, "bob@example.com", "bob")

	toolResult, err := env.tools.Create(ctx, owner.Result.ID, &command.CreateToolCommand{Name: "Drill"})
	require.NoError(t, err)
	toolID := toolResult.Result.ID

	_, err = env.tools.AddImage(ctx, toolID, &command.AddToolImageCommand{URL: "https://img.example.com/drill.jpg"})
	require.NoError(t, err)

	images, err := env.tools.ListImages(ctx, toolID)
	require.NoError(t, err)
	require.Len(t, images, 1)

	_, err = env.tools.AddReview(ctx, toolID, &command.AddToolReviewCommand{
		PersonID: reviewer.Result.ID,
		Rating:   4,
		Comment:  "battery drains fast",
	})
	require.NoError(t, err)

	reviews, err := env.tools.ListReviews(ctx, toolID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)

	// image on a missing tool
	_, err = env.tools.AddImage(ctx, 9999, &command.AddToolImageCommand{URL: "https://img.example.com/x.jpg"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateToolRequiresOwner(t *testing.T) {
	env := newTestEnv(t, 100)

	_, err := env.tools.Create(context.Background(), 9999, &command.CreateToolCommand{Name: "Drill"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
