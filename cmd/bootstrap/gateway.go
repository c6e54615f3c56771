package bootstrap

import (
	"servemart/internal/infra/gateway"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		gateway.NewRazorpayGateway,
	),
)
