//go:build unit

package builder

import (
	"time"

	dombooking "servemart/internal/domain/booking"
	reqdto "servemart/internal/handler/dto/request"
	"servemart/internal/usecase/queries"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ClientID     uuid.UUID
	ClientName   string
	ServiceID    uuid.UUID
	ServiceTitle string
	ProviderID   uuid.UUID
	Date         dombooking.Date
	TimeOfDay    dombooking.TimeOfDay
	Status       dombooking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	timeOfDay, _ := dombooking.NewTimeOfDay(10, 0, 0)
	return &BookingBuilder{
		ClientID:     uuid.New(),
		ClientName:   "testclient",
		ServiceID:    uuid.New(),
		ServiceTitle: "Math Tutoring",
		ProviderID:   uuid.New(),
		Date:         dombooking.DateOf(now).AddDays(7),
		TimeOfDay:    timeOfDay,
		Status:       dombooking.StatusPending,
		CreatedAt:    now,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		uuid.New(),
		b.ClientID,
		b.ServiceID,
		b.ProviderID,
		b.Date,
		b.TimeOfDay,
		b.Status,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID: b.ServiceID,
		Date:      b.Date.String(),
		Time:      "10:00",
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		ServiceID:    b.ServiceID,
		ServiceTitle: b.ServiceTitle,
		ClientID:     b.ClientID,
		ClientName:   b.ClientName,
		ProviderID:   b.ProviderID,
		Date:         b.Date.String(),
		Time:         b.TimeOfDay.String(),
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           uuid.New(),
		ServiceID:    b.ServiceID,
		ServiceTitle: b.ServiceTitle,
		Date:         b.Date.String(),
		Time:         b.TimeOfDay.String(),
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         uuid.New(),
		ClientID:   b.ClientID,
		ServiceID:  b.ServiceID,
		ProviderID: b.ProviderID,
		Date:       b.Date,
		TimeOfDay:  b.TimeOfDay,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSlotSummaryRow(total int64) *queries.SlotSummaryRow {
	return &queries.SlotSummaryRow{
		ServiceID:    b.ServiceID,
		ServiceTitle: b.ServiceTitle,
		Date:         b.Date.String(),
		Time:         b.TimeOfDay.String(),
		Total:        total,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithClientID(clientID uuid.UUID) *BookingBuilder {
	b.ClientID = clientID
	return b
}

func (b *BookingBuilder) WithServiceID(serviceID uuid.UUID) *BookingBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *BookingBuilder) WithProviderID(providerID uuid.UUID) *BookingBuilder {
	b.ProviderID = providerID
	return b
}

func (b *BookingBuilder) WithDate(date dombooking.Date) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeOfDay(t dombooking.TimeOfDay) *BookingBuilder {
	b.TimeOfDay = t
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = dombooking.StatusConfirmed
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = dombooking.StatusCompleted
	return b
}
