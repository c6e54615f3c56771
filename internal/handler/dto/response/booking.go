package response

import (
	"time"

	"servemart/internal/usecase/commands"
	"servemart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	SlotCount int64     `json:"slot_count"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID: r.BookingID,
		SlotCount: r.SlotCount,
	}
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceTitle  string    `json:"service_title"`
	ClientID      uuid.UUID `json:"client_id"`
	ClientName    string    `json:"client_name"`
	ProviderID    uuid.UUID `json:"provider_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type SlotCountResponse struct {
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Total     int64     `json:"total"`
}

type SlotSummaryResponse struct {
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Total        int64     `json:"total"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListItemResponse {
	result := make([]*BookingListItemResponse, len(items))
	for i, item := range items {
		var resp BookingListItemResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}

func FromSlotSummaryRows(rows []*queries.SlotSummaryRow) []*SlotSummaryResponse {
	result := make([]*SlotSummaryResponse, len(rows))
	for i, row := range rows {
		var resp SlotSummaryResponse
		_ = copier.Copy(&resp, row)
		result[i] = &resp
	}
	return result
}
