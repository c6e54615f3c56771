package shared

import (
	"context"
	"time"

	"servemart/internal/domain/booking"
	"servemart/internal/domain/payment"
	"servemart/internal/domain/service"
	"servemart/internal/domain/user"
	"servemart/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Users() UserRepository
	Services() ServiceRepository
	Reads() CommandReads
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	// DeleteExpired removes past-slot bookings that never reached Confirmed or
	// Completed. Single conditional statement so concurrent sweeps stay safe.
	DeleteExpired(ctx context.Context, dbtx db.DBTX, today booking.Date, now booking.TimeOfDay) (int64, error)
	// CompleteExpired bulk-moves past-slot Confirmed bookings to Completed.
	CompleteExpired(ctx context.Context, dbtx db.DBTX, today booking.Date, now booking.TimeOfDay) (int64, error)
}

type PaymentRepository interface {
	// Upsert creates the booking's payment row or re-points the existing one
	// at a fresh gateway order (one payment per booking).
	Upsert(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error)
	MarkCompleted(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *service.Service) (uuid.UUID, error)
	SetAvailability(ctx context.Context, dbtx db.DBTX, id uuid.UUID, available bool) error
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	PaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentSnapshot, error)
	PaymentByOrderID(ctx context.Context, orderID string) (*PaymentSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	// HasActiveBooking reports whether the client holds a booking for the
	// service whose status is neither Completed nor Cancelled.
	HasActiveBooking(ctx context.Context, clientID, serviceID uuid.UUID) (bool, error)
	// ConfirmedPaidSlotCount counts Confirmed bookings with a Completed
	// payment for the (service, date, time) tuple.
	ConfirmedPaidSlotCount(ctx context.Context, serviceID uuid.UUID, date booking.Date, timeOfDay booking.TimeOfDay) (int64, error)
}

// Minimal snapshots for command-side reads (CQRS separation from view types)
type BookingSnapshot struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ServiceID  uuid.UUID
	ProviderID uuid.UUID
	Date       booking.Date
	TimeOfDay  booking.TimeOfDay
	Status     booking.Status
	CreatedAt  time.Time
}

type ServiceSnapshot struct {
	ID            uuid.UUID
	ProviderID    uuid.UUID
	Title         string
	PriceSubunits int64
	Available     bool
}

type PaymentSnapshot struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	OrderID   *string
	Amount    int64
	Status    payment.Status
}

type UserSnapshot struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         user.Role
}
