package response

import (
	"servemart/internal/usecase/queries"
)

type ProfileResponse struct {
	User              *UserResponse              `json:"user"`
	ActiveBookings    []*BookingListItemResponse `json:"active_bookings,omitempty"`
	ConfirmedBookings []*BookingListItemResponse `json:"confirmed_bookings,omitempty"`
	CompletedBookings []*BookingListItemResponse `json:"completed_bookings,omitempty"`
	PendingRequests   []*BookingListItemResponse `json:"pending_requests,omitempty"`
	SlotCounts        []*SlotSummaryResponse     `json:"slot_counts,omitempty"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	resp := &ProfileResponse{
		User: FromUserView(v.User),
	}
	if v.ActiveBookings != nil {
		resp.ActiveBookings = FromBookingListItems(v.ActiveBookings)
	}
	if v.ConfirmedBookings != nil {
		resp.ConfirmedBookings = FromBookingListItems(v.ConfirmedBookings)
	}
	if v.CompletedBookings != nil {
		resp.CompletedBookings = FromBookingListItems(v.CompletedBookings)
	}
	if v.PendingRequests != nil {
		resp.PendingRequests = FromBookingListItems(v.PendingRequests)
	}
	if v.SlotCounts != nil {
		resp.SlotCounts = FromSlotSummaryRows(v.SlotCounts)
	}
	return resp
}
