package commands

import (
	"context"
	"log/slog"

	"servemart/internal/domain/booking"
	"servemart/internal/infra"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ServiceID uuid.UUID
	Date      string
	Time      string
}

// CreateBookingResult carries the new booking id and the slot-count feedback
// shown to the client (pre-existing confirmed+paid count plus this request).
// The count is informational; no capacity ceiling exists.
type CreateBookingResult struct {
	BookingID uuid.UUID
	SlotCount int64
}

type BookingCommands interface {
	Create(ctx context.Context, clientID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, clientID, bookingID uuid.UUID) error
	Approve(ctx context.Context, providerID, bookingID uuid.UUID) error
	// ConfirmDirectly is the manage-flow accept reaching Confirmed without the
	// Approved intermediate; returns the slot count for the provider message.
	ConfirmDirectly(ctx context.Context, providerID, bookingID uuid.UUID) (int64, error)
	Reject(ctx context.Context, providerID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services) BookingCommands {
	return &bookingCommandsImpl{uow: uow, services: services}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, clientID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}
	timeOfDay, err := booking.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	reads := c.uow.CommandReads()

	svc, err := reads.ServiceByID(ctx, in.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Per-(client, service) exclusivity. No transaction spans this check and
	// the insert below; two racing creations can both pass. The store keeps
	// row-level atomicity only, as the original did.
	active, err := reads.HasActiveBooking(ctx, clientID, svc.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if active {
		return nil, errs.ErrDuplicateActiveBooking
	}

	entity, err := booking.NewBooking(
		c.services,
		booking.ServiceSpec{ID: svc.ID, ProviderID: svc.ProviderID},
		clientID,
		date,
		timeOfDay,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInsufficientLeadTime)
	}

	var result CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ConfirmedPaidSlotCount(ctx, svc.ID, date, timeOfDay)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return err
		}

		result.BookingID = id
		result.SlotCount = existing + 1
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("booking created",
		"booking_id", result.BookingID,
		"service_id", svc.ID,
		"client_id", clientID,
		"slot_count", result.SlotCount)

	return &result, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, clientID, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadForClient(ctx, tx, clientID, bookingID)
		if err != nil {
			return err
		}

		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status())
	})
}

func (c *bookingCommandsImpl) Approve(ctx context.Context, providerID, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadForProvider(ctx, tx, providerID, bookingID)
		if err != nil {
			return err
		}

		if err := entity.Approve(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status())
	})
}

func (c *bookingCommandsImpl) ConfirmDirectly(ctx context.Context, providerID, bookingID uuid.UUID) (int64, error) {
	var count int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadForProvider(ctx, tx, providerID, bookingID)
		if err != nil {
			return err
		}

		if err := entity.ConfirmDirectly(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return err
		}

		count, err = tx.Reads().ConfirmedPaidSlotCount(ctx, entity.ServiceID(), entity.Date(), entity.TimeOfDay())
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *bookingCommandsImpl) Reject(ctx context.Context, providerID, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadForProvider(ctx, tx, providerID, bookingID)
		if err != nil {
			return err
		}

		if err := entity.Reject(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status())
	})
}

// loadForClient fetches the booking and hides it behind not-found when the
// caller is not the owner, matching the original per-row ownership filter.
func (c *bookingCommandsImpl) loadForClient(ctx context.Context, tx shared.Tx, clientID, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := c.load(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if snap.ClientID() != clientID {
		return nil, errs.ErrBookingNotFound
	}
	return snap, nil
}

func (c *bookingCommandsImpl) loadForProvider(ctx context.Context, tx shared.Tx, providerID, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := c.load(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if !snap.IsProvidedBy(providerID) {
		return nil, errs.ErrBookingNotFound
	}
	return snap, nil
}

func (c *bookingCommandsImpl) load(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return booking.ReconstructBooking(
		snap.ID,
		snap.ClientID,
		snap.ServiceID,
		snap.ProviderID,
		snap.Date,
		snap.TimeOfDay,
		snap.Status,
		snap.CreatedAt,
	), nil
}
