//go:build unit

package commands_test

import (
	"context"
	"testing"

	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	providerID := uuid.New()

	validInput := commands.CreateServiceInput{
		Title:         "Math Tutoring",
		Category:      "Tutoring",
		PriceSubunits: 50000,
	}

	t.Run("success: new services start available", func(t *testing.T) {
		store := newFakeStore()

		id, err := commands.NewServiceCommands(&fakeUoW{store: store}).Create(ctx, providerID, validInput)
		require.NoError(t, err)

		require.Len(t, store.createdServices, 1)
		created := store.createdServices[0]
		assert.Equal(t, id, created.ID())
		assert.Equal(t, providerID, created.ProviderID())
		assert.True(t, created.Available())
	})

	t.Run("error: domain validation rejects bad input", func(t *testing.T) {
		testCases := []struct {
			name string
			mut  func(in *commands.CreateServiceInput)
		}{
			{name: "empty title", mut: func(in *commands.CreateServiceInput) { in.Title = "" }},
			{name: "unknown category", mut: func(in *commands.CreateServiceInput) { in.Category = "Gardening" }},
			{name: "negative price", mut: func(in *commands.CreateServiceInput) { in.PriceSubunits = -1 }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				store := newFakeStore()
				in := validInput
				tc.mut(&in)

				_, err := commands.NewServiceCommands(&fakeUoW{store: store}).Create(ctx, providerID, in)
				require.Error(t, err)
				assert.Empty(t, store.createdServices)
			})
		}
	})
}

func TestServiceSetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner toggles availability off", func(t *testing.T) {
		store := newFakeStore()
		svc := seedService(store)

		err := commands.NewServiceCommands(&fakeUoW{store: store}).SetAvailability(ctx, svc.ProviderID, svc.ID, false)
		require.NoError(t, err)

		got, ok := store.availabilitySet[svc.ID]
		require.True(t, ok)
		assert.False(t, got)
	})

	t.Run("error: someone else's service reads as missing", func(t *testing.T) {
		store := newFakeStore()
		svc := seedService(store)

		err := commands.NewServiceCommands(&fakeUoW{store: store}).SetAvailability(ctx, uuid.New(), svc.ID, false)
		require.ErrorIs(t, err, errs.ErrServiceNotFound)
		assert.Empty(t, store.availabilitySet)
	})

	t.Run("error: unknown service", func(t *testing.T) {
		store := newFakeStore()

		err := commands.NewServiceCommands(&fakeUoW{store: store}).SetAvailability(ctx, uuid.New(), uuid.New(), true)
		require.ErrorIs(t, err, errs.ErrServiceNotFound)
	})
}
