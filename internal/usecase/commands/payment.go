package commands

import (
	"context"
	"fmt"
	"log/slog"

	"servemart/internal/domain/booking"
	"servemart/internal/domain/payment"
	"servemart/internal/infra"
	"servemart/internal/pkg/clock"
	"servemart/internal/pkg/config"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

// InitiatePaymentResult is what the checkout page needs to open the gateway
// widget: the order reference, the amount, and the publishable key.
type InitiatePaymentResult struct {
	OrderID        string
	AmountSubunits int64
	Currency       string
	APIKey         string
}

type ConfirmPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type PaymentCommands interface {
	// Initiate creates (or re-creates) a gateway order for the booking and
	// records a Pending payment row pointing at it.
	Initiate(ctx context.Context, clientID, bookingID uuid.UUID) (*InitiatePaymentResult, error)
	// Confirm verifies the gateway callback signature, marks the payment
	// Completed, and moves the booking to Confirmed.
	Confirm(ctx context.Context, in ConfirmPaymentInput) (uuid.UUID, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clk     clock.Clock
	cfg     config.RazorpayConfig
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, cfg config.RazorpayConfig) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, gateway: gateway, clk: clk, cfg: cfg}
}

func (c *paymentCommandsImpl) Initiate(ctx context.Context, clientID, bookingID uuid.UUID) (*InitiatePaymentResult, error) {
	reads := c.uow.CommandReads()

	bk, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if bk.ClientID != clientID {
		return nil, errs.ErrBookingNotFound
	}

	svc, err := reads.ServiceByID(ctx, bk.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	existing, err := reads.PaymentByBookingID(ctx, bookingID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing != nil && existing.Status == payment.StatusCompleted {
		return nil, errs.ErrAlreadyPaid
	}

	amount, err := payment.NewMoney(svc.PriceSubunits)
	if err != nil {
		return nil, errs.Wrap(err, "invalid service price")
	}

	// The gateway call stays outside the transaction; a created-but-unsaved
	// order is harmless, an uncreated-but-saved one is not.
	receipt := fmt.Sprintf("booking_%s", bookingID)
	orderID, err := c.gateway.CreateOrder(ctx, amount.Subunits(), c.cfg.Currency, receipt)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create gateway order"), errs.ErrGatewayOrderFailed)
	}

	var entity *payment.Payment
	if existing != nil {
		amt, merr := payment.NewMoney(existing.Amount)
		if merr != nil {
			return nil, errs.Wrap(merr, "invalid stored payment amount")
		}
		entity = payment.ReconstructPayment(existing.ID, existing.BookingID, existing.OrderID, amt, existing.Status, c.clk.Now())
		if err := entity.Reissue(orderID, amount); err != nil {
			return nil, errs.Mark(err, errs.ErrAlreadyPaid)
		}
	} else {
		entity = payment.NewPayment(bookingID, orderID, amount, c.clk.Now())
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Payments().Upsert(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("payment order created",
		"booking_id", bookingID,
		"order_id", orderID,
		"amount_subunits", amount.Subunits())

	return &InitiatePaymentResult{
		OrderID:        orderID,
		AmountSubunits: amount.Subunits(),
		Currency:       c.cfg.Currency,
		APIKey:         c.cfg.APIKey,
	}, nil
}

func (c *paymentCommandsImpl) Confirm(ctx context.Context, in ConfirmPaymentInput) (uuid.UUID, error) {
	if err := c.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrSignatureVerificationFailed)
	}

	var bookingID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PaymentByOrderID(ctx, in.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPaymentNotFound
			}
			return err
		}

		if err := tx.Payments().MarkCompleted(ctx, tx.DB(), snap.ID); err != nil {
			return err
		}

		// Payment completion confirms the booking regardless of its current
		// status; the gateway event is the last word once the signature holds.
		bookingID = snap.BookingID
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.BookingID, booking.StatusConfirmed)
	})
	if err != nil {
		if errs.Is(err, errs.ErrPaymentNotFound) {
			return uuid.Nil, err
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("payment confirmed",
		"order_id", in.OrderID,
		"booking_id", bookingID)

	return bookingID, nil
}
