package repository

import (
	"context"

	"servemart/internal/domain/payment"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/infra/pgconv"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

var _ shared.PaymentRepository = (*PaymentRepository)(nil)

// One payment row per booking; re-initiating payment replaces the order
// reference and resets the row to Pending.
const upsertPaymentSQL = `
INSERT INTO payments (id, booking_id, order_id, amount_subunits, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (booking_id) DO UPDATE
SET order_id = EXCLUDED.order_id,
    amount_subunits = EXCLUDED.amount_subunits,
    status = EXCLUDED.status
RETURNING id`

func (r *PaymentRepository) Upsert(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, upsertPaymentSQL,
		p.ID(),
		p.BookingID(),
		pgconv.Text(p.OrderID()),
		p.Amount().Subunits(),
		p.Status().String(),
		p.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert payment", err, kindFromPgErr(err))
	}
	return id, nil
}

const markPaymentCompletedSQL = `
UPDATE payments SET status = 'Completed' WHERE id = $1`

func (r *PaymentRepository) MarkCompleted(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, markPaymentCompletedSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment completed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
