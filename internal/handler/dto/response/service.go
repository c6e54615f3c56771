package response

import (
	"servemart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID            uuid.UUID `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	PriceSubunits int64     `json:"price_subunits"`
	Available     bool      `json:"available"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(views))
	for i, v := range views {
		result[i] = FromServiceView(v)
	}
	return result
}
