package booking

import (
	"errors"
	"time"

	"servemart/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrLeadTimeNotMet    = errors.New("bookings must be made at least one day in advance")
	ErrActiveBookingHeld = errors.New("client already has an active booking for this service")
	ErrNotOwner          = errors.New("booking belongs to a different client")
	ErrNotProvider       = errors.New("service belongs to a different provider")
	ErrTransition        = errors.New("transition not allowed from current status")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

// ServiceSpec is the slice of the service catalog a booking needs: identity
// and the provider who authorizes accept/reject.
type ServiceSpec struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
}

type Services struct {
	Clock clock.Clock
}

type Booking struct {
	id         uuid.UUID
	clientID   uuid.UUID
	serviceID  uuid.UUID
	providerID uuid.UUID
	date       Date
	timeOfDay  TimeOfDay
	status     Status
	createdAt  time.Time
}

// NewBooking creates a Pending booking after the lead-time check. The
// duplicate-active-booking rule needs store access and lives in the usecase
// layer; callers must run it before persisting.
func NewBooking(
	services *Services,
	svc ServiceSpec,
	clientID uuid.UUID,
	date Date,
	timeOfDay TimeOfDay,
) (*Booking, error) {
	today := DateOf(services.Clock.Now())
	if !date.After(today.AddDays(1)) {
		return nil, ErrLeadTimeNotMet
	}

	return &Booking{
		id:         uuid.New(),
		clientID:   clientID,
		serviceID:  svc.ID,
		providerID: svc.ProviderID,
		date:       date,
		timeOfDay:  timeOfDay,
		status:     StatusPending,
		createdAt:  services.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, clientID, serviceID, providerID uuid.UUID,
	date Date,
	timeOfDay TimeOfDay,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		clientID:   clientID,
		serviceID:  serviceID,
		providerID: providerID,
		date:       date,
		timeOfDay:  timeOfDay,
		status:     status,
		createdAt:  createdAt,
	}
}

// Cancel is the client-side cancellation; the caller authorizes ownership.
func (b *Booking) Cancel() error {
	switch b.status {
	case StatusPending, StatusApproved, StatusConfirmed:
		b.status = StatusCancelled
		return nil
	default:
		return ErrTransition
	}
}

// Approve is the booking-list accept path: Pending only.
func (b *Booking) Approve() error {
	if b.status != StatusPending {
		return ErrTransition
	}
	b.status = StatusApproved
	return nil
}

// ConfirmDirectly is the manage-flow accept path that skips Approved.
func (b *Booking) ConfirmDirectly() error {
	if b.status != StatusPending && b.status != StatusApproved {
		return ErrTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Reject is the provider declining a request: Pending only.
func (b *Booking) Reject() error {
	if b.status != StatusPending {
		return ErrTransition
	}
	b.status = StatusCancelled
	return nil
}

// ConfirmByPayment applies the payment-completion transition. The original
// flow confirms regardless of prior status, so no guard here; the looseness
// is deliberate and documented.
func (b *Booking) ConfirmByPayment() {
	b.status = StatusConfirmed
}

// Complete marks a Confirmed booking whose slot has passed.
func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrTransition
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) IsOwnedBy(clientID uuid.UUID) bool {
	return b.clientID == clientID
}

func (b *Booking) IsProvidedBy(providerID uuid.UUID) bool {
	return b.providerID == providerID
}

// HasExpired reports whether the booked slot lies strictly in the past.
func (b *Booking) HasExpired(now time.Time) bool {
	today := DateOf(now)
	if b.date.Before(today) {
		return true
	}
	return b.date.Equal(today) && b.timeOfDay.Before(TimeOfDayOf(now))
}

func (b *Booking) Slot() Slot {
	return Slot{ServiceID: b.serviceID, Date: b.date, Time: b.timeOfDay}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ClientID() uuid.UUID   { return b.clientID }
func (b *Booking) ServiceID() uuid.UUID  { return b.serviceID }
func (b *Booking) ProviderID() uuid.UUID { return b.providerID }
func (b *Booking) Date() Date            { return b.date }
func (b *Booking) TimeOfDay() TimeOfDay  { return b.timeOfDay }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
