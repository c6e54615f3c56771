//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"servemart/internal/domain/booking"
	"servemart/internal/infra/readstore"
	"servemart/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seededSlot struct {
	clientID   uuid.UUID
	providerID uuid.UUID
	serviceID  uuid.UUID
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, 'x', $4)`,
		id, role+"-"+id.String()[:8], id.String()+"@example.com", role)
	require.NoError(t, err)
	return id
}

func seedService(t *testing.T, pool *pgxpool.Pool, providerID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO services (id, provider_id, title, category, price_subunits) VALUES ($1, $2, $3, 'cleaning', 5000)`,
		id, providerID, title)
	require.NoError(t, err)
	return id
}

func seedSlotFixtures(t *testing.T, pool *pgxpool.Pool) seededSlot {
	t.Helper()
	clientID := seedUser(t, pool, "client")
	providerID := seedUser(t, pool, "provider")
	serviceID := seedService(t, pool, providerID, "Deep Clean")
	return seededSlot{clientID: clientID, providerID: providerID, serviceID: serviceID}
}

func seedBooking(t *testing.T, pool *pgxpool.Pool, s seededSlot, date, timeOfDay string, status booking.Status, createdAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO bookings (id, client_id, service_id, provider_id, slot_date, slot_time, status, created_at)
		 VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8)`,
		id, s.clientID, s.serviceID, s.providerID, date, timeOfDay, status.String(), createdAt)
	require.NoError(t, err)
	return id
}

func seedPayment(t *testing.T, pool *pgxpool.Pool, bookingID uuid.UUID, status string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO payments (id, booking_id, order_id, amount_subunits, status) VALUES ($1, $2, $3, 5000, $4)`,
		uuid.New(), bookingID, "order_"+bookingID.String()[:8], status)
	require.NoError(t, err)
}

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T, s string) booking.TimeOfDay {
	t.Helper()
	tod, err := booking.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestBookingRepository_SweepExpired(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewBookingRepository()
	ctx := context.Background()

	today := mustDate(t, "2026-09-15")
	now := mustTime(t, "12:00")

	t.Run("deletes expired unconfirmed and completes expired confirmed", func(t *testing.T) {
		resetTables(t, pool)
		s := seedSlotFixtures(t, pool)
		base := time.Now().UTC()

		expiredPending := seedBooking(t, pool, s, "2026-09-14", "10:00", booking.StatusPending, base)
		expiredApproved := seedBooking(t, pool, s, "2026-09-15", "09:00", booking.StatusApproved, base)
		expiredConfirmed := seedBooking(t, pool, s, "2026-09-15", "11:30", booking.StatusConfirmed, base)
		futurePending := seedBooking(t, pool, s, "2026-09-15", "12:00", booking.StatusPending, base)
		futureConfirmed := seedBooking(t, pool, s, "2026-09-16", "10:00", booking.StatusConfirmed, base)

		deleted, err := repo.DeleteExpired(ctx, pool, today, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		completed, err := repo.CompleteExpired(ctx, pool, today, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), completed)

		assert.Equal(t, "", fetchStatus(t, pool, expiredPending))
		assert.Equal(t, "", fetchStatus(t, pool, expiredApproved))
		assert.Equal(t, "Completed", fetchStatus(t, pool, expiredConfirmed))
		assert.Equal(t, "Pending", fetchStatus(t, pool, futurePending))
		assert.Equal(t, "Confirmed", fetchStatus(t, pool, futureConfirmed))
	})

	t.Run("second sweep over the same window touches nothing", func(t *testing.T) {
		resetTables(t, pool)
		s := seedSlotFixtures(t, pool)
		base := time.Now().UTC()

		seedBooking(t, pool, s, "2026-09-14", "10:00", booking.StatusPending, base)
		seedBooking(t, pool, s, "2026-09-14", "10:00", booking.StatusConfirmed, base)

		_, err := repo.DeleteExpired(ctx, pool, today, now)
		require.NoError(t, err)
		_, err = repo.CompleteExpired(ctx, pool, today, now)
		require.NoError(t, err)

		deleted, err := repo.DeleteExpired(ctx, pool, today, now)
		require.NoError(t, err)
		assert.Zero(t, deleted)

		completed, err := repo.CompleteExpired(ctx, pool, today, now)
		require.NoError(t, err)
		assert.Zero(t, completed)
	})

	t.Run("slot at the sweep instant is not expired", func(t *testing.T) {
		resetTables(t, pool)
		s := seedSlotFixtures(t, pool)
		boundary := seedBooking(t, pool, s, "2026-09-15", "12:00", booking.StatusPending, time.Now().UTC())

		deleted, err := repo.DeleteExpired(ctx, pool, today, now)
		require.NoError(t, err)
		assert.Zero(t, deleted)
		assert.Equal(t, "Pending", fetchStatus(t, pool, boundary))
	})
}

func TestBookingReadStore_CountForSlot(t *testing.T) {
	pool := setupPool(t)
	store := readstore.NewBookingReadStore(pool)
	ctx := context.Background()

	s := seedSlotFixtures(t, pool)
	base := time.Now().UTC()
	date := mustDate(t, "2026-09-20")
	timeOfDay := mustTime(t, "10:00")

	paid := seedBooking(t, pool, s, "2026-09-20", "10:00", booking.StatusConfirmed, base)
	seedPayment(t, pool, paid, "Completed")

	unpaid := seedBooking(t, pool, s, "2026-09-20", "10:00", booking.StatusConfirmed, base)
	seedPayment(t, pool, unpaid, "Pending")

	pendingBooking := seedBooking(t, pool, s, "2026-09-20", "10:00", booking.StatusPending, base)
	seedPayment(t, pool, pendingBooking, "Completed")

	otherSlot := seedBooking(t, pool, s, "2026-09-20", "11:00", booking.StatusConfirmed, base)
	seedPayment(t, pool, otherSlot, "Completed")

	count, err := store.CountForSlot(ctx, s.serviceID, date, timeOfDay)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "only confirmed bookings with completed payments occupy the slot")
}

func TestBookingReadStore_HasActiveBooking(t *testing.T) {
	pool := setupPool(t)
	store := readstore.NewBookingReadStore(pool)
	ctx := context.Background()

	t.Run("terminal statuses do not count as active", func(t *testing.T) {
		resetTables(t, pool)
		s := seedSlotFixtures(t, pool)
		base := time.Now().UTC()

		seedBooking(t, pool, s, "2026-09-10", "10:00", booking.StatusCompleted, base)
		seedBooking(t, pool, s, "2026-09-11", "10:00", booking.StatusCancelled, base)

		active, err := store.HasActiveBooking(ctx, s.clientID, s.serviceID)
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("a pending booking blocks a duplicate", func(t *testing.T) {
		resetTables(t, pool)
		s := seedSlotFixtures(t, pool)

		seedBooking(t, pool, s, "2026-09-21", "10:00", booking.StatusPending, time.Now().UTC())

		active, err := store.HasActiveBooking(ctx, s.clientID, s.serviceID)
		require.NoError(t, err)
		assert.True(t, active)
	})
}

func TestBookingReadStore_SlotSummary(t *testing.T) {
	pool := setupPool(t)
	store := readstore.NewBookingReadStore(pool)
	ctx := context.Background()

	s := seedSlotFixtures(t, pool)
	otherProvider := seedUser(t, pool, "provider")
	otherService := seedService(t, pool, otherProvider, "Lawn Care")
	other := seededSlot{clientID: s.clientID, providerID: otherProvider, serviceID: otherService}
	base := time.Now().UTC()

	// Two paid confirmations on the busy slot, one on each of the others.
	for range 2 {
		id := seedBooking(t, pool, s, "2026-09-22", "10:00", booking.StatusConfirmed, base)
		seedPayment(t, pool, id, "Completed")
	}
	quiet := seedBooking(t, pool, s, "2026-09-23", "14:00", booking.StatusConfirmed, base)
	seedPayment(t, pool, quiet, "Completed")
	foreign := seedBooking(t, pool, other, "2026-09-22", "10:00", booking.StatusConfirmed, base)
	seedPayment(t, pool, foreign, "Completed")

	unpaid := seedBooking(t, pool, s, "2026-09-22", "10:00", booking.StatusConfirmed, base)
	seedPayment(t, pool, unpaid, "Pending")

	t.Run("orders busiest slot first", func(t *testing.T) {
		rows, err := store.SlotSummary(ctx, nil)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, int64(2), rows[0].Total)
		assert.Equal(t, s.serviceID, rows[0].ServiceID)
		assert.Equal(t, "2026-09-22", rows[0].Date)
		assert.Equal(t, int64(1), rows[1].Total)
		assert.Equal(t, int64(1), rows[2].Total)
	})

	t.Run("provider filter narrows to own services", func(t *testing.T) {
		rows, err := store.SlotSummary(ctx, &otherProvider)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, otherService, rows[0].ServiceID)
		assert.Equal(t, int64(1), rows[0].Total)
	})
}

func TestBookingReadStore_ListOrdering(t *testing.T) {
	pool := setupPool(t)
	store := readstore.NewBookingReadStore(pool)
	ctx := context.Background()

	s := seedSlotFixtures(t, pool)
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	oldest := seedBooking(t, pool, s, "2026-09-25", "10:00", booking.StatusPending, base)
	middle := seedBooking(t, pool, s, "2026-09-24", "10:00", booking.StatusApproved, base.Add(time.Hour))
	newest := seedBooking(t, pool, s, "2026-09-23", "10:00", booking.StatusPending, base.Add(2*time.Hour))

	t.Run("client list is newest first", func(t *testing.T) {
		items, err := store.FindByClientID(ctx, s.clientID, nil)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, newest, items[0].ID)
		assert.Equal(t, middle, items[1].ID)
		assert.Equal(t, oldest, items[2].ID)
	})

	t.Run("provider list is newest first", func(t *testing.T) {
		items, err := store.FindByProviderID(ctx, s.providerID, nil)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, newest, items[0].ID)
		assert.Equal(t, oldest, items[2].ID)
	})

	t.Run("status filter applies before ordering", func(t *testing.T) {
		items, err := store.FindByClientID(ctx, s.clientID, []booking.Status{booking.StatusPending})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, newest, items[0].ID)
		assert.Equal(t, oldest, items[1].ID)
	})
}

func fetchStatus(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) string {
	t.Helper()
	var status string
	err := pool.QueryRow(context.Background(), `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
	if err != nil {
		return ""
	}
	return status
}
