//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"servemart/internal/domain/booking"
	"servemart/internal/pkg/clock"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reports rows touched by both phases", func(t *testing.T) {
		store := newFakeStore()
		store.expiredDeleted = 3
		store.expiredCompleted = 2

		sweeper := commands.NewSweeperCommands(&fakeUoW{store: store}, clock.NewMockClock(testNow))

		result, err := sweeper.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Deleted)
		assert.Equal(t, int64(2), result.Completed)

		require.Len(t, store.sweptAt, 1)
		assert.True(t, store.sweptAt[0].Equal(booking.DateOf(testNow)))
	})

	t.Run("success: a quiet sweep returns zeros", func(t *testing.T) {
		store := newFakeStore()

		sweeper := commands.NewSweeperCommands(&fakeUoW{store: store}, clock.NewMockClock(testNow))

		result, err := sweeper.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, result.Deleted)
		assert.Zero(t, result.Completed)
	})

	t.Run("error: transaction failure surfaces as database error", func(t *testing.T) {
		store := newFakeStore()
		store.withinErr = errors.New("deadlock detected")

		sweeper := commands.NewSweeperCommands(&fakeUoW{store: store}, clock.NewMockClock(testNow))

		_, err := sweeper.SweepExpired(ctx)
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
