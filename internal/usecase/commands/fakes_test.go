//go:build unit

package commands_test

import (
	"context"
	"errors"

	"servemart/internal/domain/booking"
	"servemart/internal/domain/payment"
	"servemart/internal/domain/service"
	"servemart/internal/domain/user"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is a single in-memory backing for the unit-of-work fakes. Write
// methods record what they were handed so tests can assert persisted state.
type fakeStore struct {
	bookings         map[uuid.UUID]*shared.BookingSnapshot
	services         map[uuid.UUID]*shared.ServiceSnapshot
	paymentByBooking map[uuid.UUID]*shared.PaymentSnapshot
	paymentByOrder   map[string]*shared.PaymentSnapshot
	usersByEmail     map[string]*shared.UserSnapshot

	hasActiveBooking bool
	slotCount        int64
	expiredDeleted   int64
	expiredCompleted int64

	createdBookings   []*booking.Booking
	createdUsers      []*user.User
	createdServices   []*service.Service
	statusUpdates     map[uuid.UUID]booking.Status
	upsertedPayments  []*payment.Payment
	completedPayments []uuid.UUID
	availabilitySet   map[uuid.UUID]bool
	sweptAt           []booking.Date

	withinErr error
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings:         map[uuid.UUID]*shared.BookingSnapshot{},
		services:         map[uuid.UUID]*shared.ServiceSnapshot{},
		paymentByBooking: map[uuid.UUID]*shared.PaymentSnapshot{},
		paymentByOrder:   map[string]*shared.PaymentSnapshot{},
		usersByEmail:     map[string]*shared.UserSnapshot{},
		statusUpdates:    map[uuid.UUID]booking.Status{},
		availabilitySet:  map[uuid.UUID]bool{},
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.store.withinErr != nil {
		return u.store.withinErr
	}
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Payments() shared.PaymentRepository { return &fakePaymentRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{store: t.store} }
func (t *fakeTx) Services() shared.ServiceRepository { return &fakeServiceRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.store.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return snap, nil
}

func (r *fakeReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	snap, ok := r.store.services[id]
	if !ok {
		return nil, notFound("service not found")
	}
	return snap, nil
}

func (r *fakeReads) PaymentByBookingID(_ context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	snap, ok := r.store.paymentByBooking[bookingID]
	if !ok {
		return nil, notFound("payment not found")
	}
	return snap, nil
}

func (r *fakeReads) PaymentByOrderID(_ context.Context, orderID string) (*shared.PaymentSnapshot, error) {
	snap, ok := r.store.paymentByOrder[orderID]
	if !ok {
		return nil, notFound("payment not found")
	}
	return snap, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	snap, ok := r.store.usersByEmail[email]
	if !ok {
		return nil, notFound("user not found")
	}
	return snap, nil
}

func (r *fakeReads) HasActiveBooking(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return r.store.hasActiveBooking, nil
}

func (r *fakeReads) ConfirmedPaidSlotCount(_ context.Context, _ uuid.UUID, _ booking.Date, _ booking.TimeOfDay) (int64, error) {
	return r.store.slotCount, nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (f *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if f.store.createErr != nil {
		return uuid.Nil, f.store.createErr
	}
	f.store.createdBookings = append(f.store.createdBookings, b)
	return b.ID(), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	f.store.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) DeleteExpired(_ context.Context, _ db.DBTX, today booking.Date, _ booking.TimeOfDay) (int64, error) {
	f.store.sweptAt = append(f.store.sweptAt, today)
	return f.store.expiredDeleted, nil
}

func (f *fakeBookingRepo) CompleteExpired(_ context.Context, _ db.DBTX, today booking.Date, _ booking.TimeOfDay) (int64, error) {
	return f.store.expiredCompleted, nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (f *fakePaymentRepo) Upsert(_ context.Context, _ db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	f.store.upsertedPayments = append(f.store.upsertedPayments, p)
	return p.ID(), nil
}

func (f *fakePaymentRepo) MarkCompleted(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	f.store.completedPayments = append(f.store.completedPayments, id)
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if f.store.createErr != nil {
		return uuid.Nil, f.store.createErr
	}
	f.store.createdUsers = append(f.store.createdUsers, u)
	return u.ID(), nil
}

type fakeServiceRepo struct {
	store *fakeStore
}

func (f *fakeServiceRepo) Create(_ context.Context, _ db.DBTX, s *service.Service) (uuid.UUID, error) {
	if f.store.createErr != nil {
		return uuid.Nil, f.store.createErr
	}
	f.store.createdServices = append(f.store.createdServices, s)
	return s.ID(), nil
}

func (f *fakeServiceRepo) SetAvailability(_ context.Context, _ db.DBTX, id uuid.UUID, available bool) error {
	f.store.availabilitySet[id] = available
	return nil
}

// fakeGateway records order creation and verifies against a fixed signature.
type fakeGateway struct {
	nextOrderID string
	orderErr    error
	validSig    string
	orderedAmt  int64
	orderedCur  string
	orderedRcpt string
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountSubunits int64, currency, receipt string) (string, error) {
	if g.orderErr != nil {
		return "", g.orderErr
	}
	g.orderedAmt = amountSubunits
	g.orderedCur = currency
	g.orderedRcpt = receipt
	return g.nextOrderID, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) error {
	if signature != g.validSig {
		return errors.New("signature mismatch")
	}
	return nil
}
