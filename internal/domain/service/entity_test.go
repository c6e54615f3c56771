//go:build unit

package service_test

import (
	"testing"

	"servemart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	providerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := service.NewService(uuid.New(), providerID, "Math Tutoring", service.CategoryTutoring, 50000, true)
		require.NoError(t, err)

		assert.Equal(t, "Math Tutoring", actual.Title())
		assert.Equal(t, int64(50000), actual.PriceSubunits())
		assert.True(t, actual.Available())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name     string
			title    string
			category service.Category
			price    int64
			errIs    error
		}{
			{name: "empty title", title: "", category: service.CategoryTutoring, price: 100, errIs: service.ErrEmptyTitle},
			{name: "unknown category", title: "ok", category: service.Category("Gardening"), price: 100, errIs: service.ErrInvalidCategory},
			{name: "negative price", title: "ok", category: service.CategoryOther, price: -1, errIs: service.ErrNegativePrice},
			{name: "free service is fine", title: "ok", category: service.CategoryOther, price: 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := service.NewService(uuid.New(), providerID, tc.title, tc.category, tc.price, true)
				if tc.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
				}
			})
		}
	})
}

func TestServiceOwnership(t *testing.T) {
	providerID := uuid.New()
	svc, err := service.NewService(uuid.New(), providerID, "Logo Design", service.CategoryGraphicDesign, 120000, true)
	require.NoError(t, err)

	assert.True(t, svc.IsOwnedBy(providerID))
	assert.False(t, svc.IsOwnedBy(uuid.New()))
}
