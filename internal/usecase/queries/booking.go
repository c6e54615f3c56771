package queries

import (
	"context"

	"servemart/internal/domain/booking"
	"servemart/internal/domain/user"
	"servemart/internal/infra"
	"servemart/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*BookingListItem, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingListItem, error)
	SlotCount(ctx context.Context, serviceID uuid.UUID, date booking.Date, timeOfDay booking.TimeOfDay) (int64, error)
	SlotSummary(ctx context.Context) ([]*SlotSummaryRow, error)
	Profile(ctx context.Context, userID uuid.UUID, role user.Role) (*ProfileView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID, statuses []booking.Status) ([]*BookingListItem, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID, statuses []booking.Status) ([]*BookingListItem, error)
	CountForSlot(ctx context.Context, serviceID uuid.UUID, date booking.Date, timeOfDay booking.TimeOfDay) (int64, error)
	SlotSummary(ctx context.Context, providerID *uuid.UUID) ([]*SlotSummaryRow, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.bookings.FindByClientID(ctx, clientID, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list client bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.bookings.FindByProviderID(ctx, providerID, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list provider bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) SlotCount(ctx context.Context, serviceID uuid.UUID, date booking.Date, timeOfDay booking.TimeOfDay) (int64, error) {
	count, err := q.bookings.CountForSlot(ctx, serviceID, date, timeOfDay)
	if err != nil {
		return 0, errs.Wrap(err, "failed to count slot bookings")
	}
	return count, nil
}

func (q *bookingQueriesImpl) SlotSummary(ctx context.Context) ([]*SlotSummaryRow, error) {
	rows, err := q.bookings.SlotSummary(ctx, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build slot summary")
	}
	return rows, nil
}

// Profile assembles the role-dependent profile aggregate. The expiry sweep
// runs before this in the handler, matching the original page flow.
func (q *bookingQueriesImpl) Profile(ctx context.Context, userID uuid.UUID, role user.Role) (*ProfileView, error) {
	userView, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	view := &ProfileView{User: userView}

	if role == user.RoleProvider {
		if view.PendingRequests, err = q.bookings.FindByProviderID(ctx, userID, []booking.Status{booking.StatusPending}); err != nil {
			return nil, errs.Wrap(err, "failed to list pending requests")
		}
		if view.ConfirmedBookings, err = q.bookings.FindByProviderID(ctx, userID, []booking.Status{booking.StatusConfirmed}); err != nil {
			return nil, errs.Wrap(err, "failed to list confirmed bookings")
		}
		if view.CompletedBookings, err = q.bookings.FindByProviderID(ctx, userID, []booking.Status{booking.StatusCompleted}); err != nil {
			return nil, errs.Wrap(err, "failed to list completed bookings")
		}
		if view.SlotCounts, err = q.bookings.SlotSummary(ctx, &userID); err != nil {
			return nil, errs.Wrap(err, "failed to build provider slot counts")
		}
		return view, nil
	}

	if view.ActiveBookings, err = q.bookings.FindByClientID(ctx, userID, []booking.Status{booking.StatusPending, booking.StatusApproved}); err != nil {
		return nil, errs.Wrap(err, "failed to list active bookings")
	}
	if view.ConfirmedBookings, err = q.bookings.FindByClientID(ctx, userID, []booking.Status{booking.StatusConfirmed}); err != nil {
		return nil, errs.Wrap(err, "failed to list confirmed bookings")
	}
	if view.CompletedBookings, err = q.bookings.FindByClientID(ctx, userID, []booking.Status{booking.StatusCompleted}); err != nil {
		return nil, errs.Wrap(err, "failed to list completed bookings")
	}
	return view, nil
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return view, nil
}
