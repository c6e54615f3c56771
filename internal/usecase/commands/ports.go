package commands

import "context"

// PaymentGateway is the external payment collaborator. Order creation and
// signature verification are consumed as black-box capabilities; once
// VerifySignature returns nil the event is trusted.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountSubunits int64, currency, receipt string) (orderID string, err error)
	VerifySignature(orderID, paymentID, signature string) error
}
