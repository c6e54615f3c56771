package request

import (
	"github.com/google/uuid"
)

// Date and Time stay strings at the boundary; parsing into calendar values
// happens in the usecase so invalid input maps to one error path.
type CreateBookingRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Time      string    `json:"time" binding:"required"`
}

// ServiceID binds as a string because gin's query binding cannot populate a
// uuid.UUID; the handler parses it the same way path params are parsed.
type SlotCountRequest struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Date      string `form:"date" binding:"required"`
	Time      string `form:"time" binding:"required"`
}
