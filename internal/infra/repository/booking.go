package repository

import (
	"context"

	"servemart/internal/domain/booking"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/infra/pgconv"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

const createBookingSQL = `
INSERT INTO bookings (id, client_id, service_id, provider_id, slot_date, slot_time, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.ClientID(),
		b.ServiceID(),
		b.ProviderID(),
		pgconv.Date(b.Date()),
		pgconv.TimeOfDay(b.TimeOfDay()),
		b.Status().String(),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, kindFromPgErr(err))
	}
	return id, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2 WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// A booking has expired when its slot date is past, or is today with a
// slot time earlier than now. Both sweep statements repeat the predicate
// so each one is individually idempotent.
const deleteExpiredSQL = `
DELETE FROM bookings
WHERE status NOT IN ('Confirmed', 'Completed')
  AND (slot_date < $1 OR (slot_date = $1 AND slot_time < $2))`

func (r *BookingRepository) DeleteExpired(ctx context.Context, dbtx db.DBTX, today booking.Date, now booking.TimeOfDay) (int64, error) {
	tag, err := dbtx.Exec(ctx, deleteExpiredSQL, pgconv.Date(today), pgconv.TimeOfDay(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired bookings", err)
	}
	return tag.RowsAffected(), nil
}

const completeExpiredSQL = `
UPDATE bookings SET status = 'Completed'
WHERE status = 'Confirmed'
  AND (slot_date < $1 OR (slot_date = $1 AND slot_time < $2))`

func (r *BookingRepository) CompleteExpired(ctx context.Context, dbtx db.DBTX, today booking.Date, now booking.TimeOfDay) (int64, error) {
	tag, err := dbtx.Exec(ctx, completeExpiredSQL, pgconv.Date(today), pgconv.TimeOfDay(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete expired bookings", err)
	}
	return tag.RowsAffected(), nil
}
