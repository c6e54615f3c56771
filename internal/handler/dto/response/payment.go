package response

import (
	"servemart/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitiatePaymentResponse struct {
	OrderID        string `json:"order_id"`
	AmountSubunits int64  `json:"amount_subunits"`
	Currency       string `json:"currency"`
	APIKey         string `json:"api_key"`
}

func FromInitiatePaymentResult(r *commands.InitiatePaymentResult) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		OrderID:        r.OrderID,
		AmountSubunits: r.AmountSubunits,
		Currency:       r.Currency,
		APIKey:         r.APIKey,
	}
}

type ConfirmPaymentResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
}
