package pgconv

import (
	"errors"

	"servemart/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Converters between pgtype wire values and domain value objects.

func UUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func FromUUID(v pgtype.UUID) uuid.UUID {
	if !v.Valid {
		return uuid.Nil
	}
	return uuid.UUID(v.Bytes)
}

func Date(d booking.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func FromDate(v pgtype.Date) booking.Date {
	return booking.DateOf(v.Time)
}

func TimeOfDay(t booking.TimeOfDay) pgtype.Time {
	us := int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
	return pgtype.Time{Microseconds: us * 1_000_000, Valid: true}
}

func FromTimeOfDay(v pgtype.Time) booking.TimeOfDay {
	secs := int(v.Microseconds / 1_000_000)
	t, err := booking.NewTimeOfDay(secs/3600, (secs%3600)/60, secs%60)
	if err != nil {
		return booking.TimeOfDay{}
	}
	return t
}

func Text(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func FromText(v pgtype.Text) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
