package readstore

import (
	"context"

	"servemart/internal/domain/payment"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/infra/pgconv"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const snapshotPaymentByBookingIDSQL = `
SELECT id, booking_id, order_id, amount_subunits, status
FROM payments
WHERE booking_id = $1`

func (r *PaymentReadStore) SnapshotByBookingID(ctx context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	return r.snapshot(ctx, snapshotPaymentByBookingIDSQL, bookingID)
}

const snapshotPaymentByOrderIDSQL = `
SELECT id, booking_id, order_id, amount_subunits, status
FROM payments
WHERE order_id = $1`

func (r *PaymentReadStore) SnapshotByOrderID(ctx context.Context, orderID string) (*shared.PaymentSnapshot, error) {
	return r.snapshot(ctx, snapshotPaymentByOrderIDSQL, orderID)
}

func (r *PaymentReadStore) snapshot(ctx context.Context, sql string, arg any) (*shared.PaymentSnapshot, error) {
	var (
		snap    shared.PaymentSnapshot
		orderID pgtype.Text
		status  string
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(&snap.ID, &snap.BookingID, &orderID, &snap.Amount, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment snapshot", err)
	}

	snap.OrderID = pgconv.FromText(orderID)
	snap.Status = payment.Status(status)
	return &snap, nil
}
