package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
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

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// SlotSummaryRow is one dashboard line: a slot and how many confirmed, paid
// bookings it holds. Informational only; nothing enforces a ceiling.
type SlotSummaryRow struct {
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Total        int64     `json:"total"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Bio      string    `json:"bio,omitempty"`
}

type ServiceView struct {
	ID            uuid.UUID `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	PriceSubunits int64     `json:"price_subunits"`
	Available     bool      `json:"available"`
}

// ProfileView is the aggregate behind the profile page; which slices are
// populated depends on the caller's role.
type ProfileView struct {
	User              *UserView          `json:"user"`
	ActiveBookings    []*BookingListItem `json:"active_bookings,omitempty"`
	ConfirmedBookings []*BookingListItem `json:"confirmed_bookings,omitempty"`
	CompletedBookings []*BookingListItem `json:"completed_bookings,omitempty"`
	PendingRequests   []*BookingListItem `json:"pending_requests,omitempty"`
	SlotCounts        []*SlotSummaryRow  `json:"slot_counts,omitempty"`
}
