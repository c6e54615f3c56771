package request

type CreateServiceRequest struct {
	Title         string `json:"title" binding:"required"`
	Category      string `json:"category" binding:"required"`
	PriceSubunits int64  `json:"price_subunits" binding:"required,min=0"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
