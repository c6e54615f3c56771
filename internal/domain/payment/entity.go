package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCompleted = errors.New("payment already completed")
	ErrMissingOrderRef  = errors.New("payment has no gateway order reference")
)

// Payment is the one-per-booking satellite row tracking a payment attempt.
// OrderID is the external gateway order reference and stays nil until an
// order has been created.
type Payment struct {
	id        uuid.UUID
	bookingID uuid.UUID
	orderID   *string
	amount    Money
	status    Status
	createdAt time.Time
}

func NewPayment(bookingID uuid.UUID, orderID string, amount Money, now time.Time) *Payment {
	ref := orderID
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		orderID:   &ref,
		amount:    amount,
		status:    StatusPending,
		createdAt: now,
	}
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	orderID *string,
	amount Money,
	status Status,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:        id,
		bookingID: bookingID,
		orderID:   orderID,
		amount:    amount,
		status:    status,
		createdAt: createdAt,
	}
}

// Reissue points a pending or failed payment at a fresh gateway order,
// mirroring the update-or-create behavior of payment initiation.
func (p *Payment) Reissue(orderID string, amount Money) error {
	if p.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	ref := orderID
	p.orderID = &ref
	p.amount = amount
	p.status = StatusPending
	return nil
}

func (p *Payment) MarkCompleted() error {
	if p.orderID == nil {
		return ErrMissingOrderRef
	}
	p.status = StatusCompleted
	return nil
}

func (p *Payment) MarkFailed() {
	p.status = StatusFailed
}

func (p *Payment) IsCompleted() bool {
	return p.status == StatusCompleted
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) OrderID() *string     { return p.orderID }
func (p *Payment) Amount() Money        { return p.amount }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
