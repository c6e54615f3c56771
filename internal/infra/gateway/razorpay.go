package gateway

import (
	"context"

	"servemart/internal/pkg/config"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/commands"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// RazorpayGateway adapts the Razorpay SDK to the payment gateway port.
// Amounts are passed in subunits, which is also what the API expects.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpayGateway(cfg config.RazorpayConfig) commands.PaymentGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(cfg.APIKey, cfg.APISecret),
		secret: cfg.APISecret,
	}
}

// payment_capture 1 captures the payment as soon as it is authorized;
// without it the gateway holds funds in manual-capture mode.
func orderPayload(amountSubunits int64, currency, receipt string) map[string]interface{} {
	return map[string]interface{}{
		"amount":          amountSubunits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amountSubunits int64, currency, receipt string) (string, error) {
	body, err := g.client.Order.Create(orderPayload(amountSubunits, currency, receipt), nil)
	if err != nil {
		return "", errs.Wrap(err, "razorpay order creation failed")
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", errs.New("razorpay order response missing id")
	}

	return orderID, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}

	if !utils.VerifyPaymentSignature(params, signature, g.secret) {
		return errs.New("razorpay signature mismatch")
	}
	return nil
}
