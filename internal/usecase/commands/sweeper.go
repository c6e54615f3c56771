package commands

import (
	"context"
	"log/slog"

	"servemart/internal/domain/booking"
	"servemart/internal/pkg/clock"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/shared"
)

// SweepResult reports how many rows each sweep phase touched.
type SweepResult struct {
	Deleted   int64
	Completed int64
}

// SweeperCommands prunes bookings whose slot moment has passed. Deletion and
// completion run in one transaction; each statement carries its own status
// predicate, so overlapping sweeps converge on the same end state.
type SweeperCommands interface {
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type sweeperCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewSweeperCommands(uow shared.UnitOfWork, clk clock.Clock) SweeperCommands {
	return &sweeperCommandsImpl{uow: uow, clk: clk}
}

func (c *sweeperCommandsImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	now := c.clk.Now()
	today := booking.DateOf(now)
	timeOfDay := booking.TimeOfDayOf(now)

	var result SweepResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Bookings().DeleteExpired(ctx, tx.DB(), today, timeOfDay)
		if err != nil {
			return err
		}

		completed, err := tx.Bookings().CompleteExpired(ctx, tx.DB(), today, timeOfDay)
		if err != nil {
			return err
		}

		result.Deleted = deleted
		result.Completed = completed
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if result.Deleted > 0 || result.Completed > 0 {
		slog.Info("expired bookings swept",
			"deleted", result.Deleted,
			"completed", result.Completed)
	}

	return &result, nil
}
