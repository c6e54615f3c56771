package readstore

import (
	"context"
	"time"

	"servemart/internal/domain/booking"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/infra/pgconv"
	"servemart/internal/usecase/queries"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

const findBookingByIDSQL = `
SELECT b.id, b.service_id, s.title, b.client_id, u.username, b.provider_id,
       b.slot_date, b.slot_time, b.status, p.status, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN users u ON u.id = b.client_id
LEFT JOIN payments p ON p.booking_id = b.id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view          queries.BookingView
		slotDate      pgtype.Date
		slotTime      pgtype.Time
		paymentStatus pgtype.Text
	)
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID, &view.ServiceID, &view.ServiceTitle, &view.ClientID, &view.ClientName,
		&view.ProviderID, &slotDate, &slotTime, &view.Status, &paymentStatus, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.Date = pgconv.FromDate(slotDate).String()
	view.Time = pgconv.FromTimeOfDay(slotTime).String()
	view.PaymentStatus = pgconv.FromText(paymentStatus)
	return &view, nil
}

const listBookingsByClientSQL = `
SELECT b.id, b.service_id, s.title, b.slot_date, b.slot_time, b.status, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.client_id = $1
  AND ($2::text[] IS NULL OR b.status = ANY($2))
ORDER BY b.created_at DESC`

const listBookingsByProviderSQL = `
SELECT b.id, b.service_id, s.title, b.slot_date, b.slot_time, b.status, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.provider_id = $1
  AND ($2::text[] IS NULL OR b.status = ANY($2))
ORDER BY b.created_at DESC`

func (r *BookingReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID, statuses []booking.Status) ([]*queries.BookingListItem, error) {
	return r.list(ctx, listBookingsByClientSQL, clientID, statuses)
}

func (r *BookingReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID, statuses []booking.Status) ([]*queries.BookingListItem, error) {
	return r.list(ctx, listBookingsByProviderSQL, providerID, statuses)
}

func (r *BookingReadStore) list(ctx context.Context, sql string, ownerID uuid.UUID, statuses []booking.Status) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, sql, ownerID, statusStrings(statuses))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item     queries.BookingListItem
			slotDate pgtype.Date
			slotTime pgtype.Time
		)
		if err := rows.Scan(&item.ID, &item.ServiceID, &item.ServiceTitle, &slotDate, &slotTime, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.Date = pgconv.FromDate(slotDate).String()
		item.Time = pgconv.FromTimeOfDay(slotTime).String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

// The slot count is the number of Confirmed bookings whose payment is
// Completed; unpaid confirmations do not occupy a slot.
const countForSlotSQL = `
SELECT COUNT(*)
FROM bookings b
JOIN payments p ON p.booking_id = b.id
WHERE b.service_id = $1
  AND b.slot_date = $2
  AND b.slot_time = $3
  AND b.status = 'Confirmed'
  AND p.status = 'Completed'`

func (r *BookingReadStore) CountForSlot(ctx context.Context, serviceID uuid.UUID, date booking.Date, timeOfDay booking.TimeOfDay) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, countForSlotSQL, serviceID, pgconv.Date(date), pgconv.TimeOfDay(timeOfDay)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot bookings", err)
	}
	return count, nil
}

const slotSummarySQL = `
SELECT b.service_id, s.title, b.slot_date, b.slot_time, COUNT(*)
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN payments p ON p.booking_id = b.id
WHERE b.status = 'Confirmed'
  AND p.status = 'Completed'
  AND ($1::uuid IS NULL OR b.provider_id = $1)
GROUP BY b.service_id, s.title, b.slot_date, b.slot_time
ORDER BY COUNT(*) DESC, b.slot_date, b.slot_time, s.title`

func (r *BookingReadStore) SlotSummary(ctx context.Context, providerID *uuid.UUID) ([]*queries.SlotSummaryRow, error) {
	rows, err := r.db.Query(ctx, slotSummarySQL, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query slot summary", err)
	}
	defer rows.Close()

	var result []*queries.SlotSummaryRow
	for rows.Next() {
		var (
			row      queries.SlotSummaryRow
			slotDate pgtype.Date
			slotTime pgtype.Time
		)
		if err := rows.Scan(&row.ServiceID, &row.ServiceTitle, &slotDate, &slotTime, &row.Total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot summary row", err)
		}
		row.Date = pgconv.FromDate(slotDate).String()
		row.Time = pgconv.FromTimeOfDay(slotTime).String()
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot summary rows", err)
	}
	return result, nil
}

const snapshotBookingByIDSQL = `
SELECT id, client_id, service_id, provider_id, slot_date, slot_time, status, created_at
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap     shared.BookingSnapshot
		slotDate pgtype.Date
		slotTime pgtype.Time
		status   string
		created  time.Time
	)
	err := r.db.QueryRow(ctx, snapshotBookingByIDSQL, id).Scan(
		&snap.ID, &snap.ClientID, &snap.ServiceID, &snap.ProviderID,
		&slotDate, &slotTime, &status, &created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking snapshot", err)
	}

	snap.Date = pgconv.FromDate(slotDate)
	snap.TimeOfDay = pgconv.FromTimeOfDay(slotTime)
	snap.Status = booking.Status(status)
	snap.CreatedAt = created
	return &snap, nil
}

const hasActiveBookingSQL = `
SELECT EXISTS (
  SELECT 1 FROM bookings
  WHERE client_id = $1
    AND service_id = $2
    AND status NOT IN ('Completed', 'Cancelled')
)`

func (r *BookingReadStore) HasActiveBooking(ctx context.Context, clientID, serviceID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasActiveBookingSQL, clientID, serviceID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return exists, nil
}

func statusStrings(statuses []booking.Status) []string {
	if len(statuses) == 0 {
		return nil
	}
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
