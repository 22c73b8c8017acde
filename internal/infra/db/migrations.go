package db

import (
	"context"

	"booking-engine/internal/pkg/errs"
)

// schemaSQL holds the full schema. Statements are idempotent so Migrate can
// run unconditionally at startup.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id               BIGINT GENERATED ALWAYS AS IDENTITY UNIQUE,
    customer_id      BIGINT PRIMARY KEY,
    customer_name    TEXT NOT NULL,
    phone            TEXT NOT NULL,
    service          TEXT NOT NULL,
    day              TEXT NOT NULL,
    slot_time        TEXT NOT NULL,
    scheduled_date   DATE NOT NULL,
    urgency          TEXT NOT NULL DEFAULT 'normal',
    status           TEXT NOT NULL DEFAULT 'pending',
    appointment_at   TIMESTAMPTZ NOT NULL,
    reminder_sent_at TIMESTAMPTZ,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- A slot is exclusive only while its booking still occupies it. Completed,
-- no-show and deleted bookings free the slot for reuse.
CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_slot
    ON bookings (day, slot_time)
    WHERE status IN ('pending', 'confirmed');

CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status);
CREATE INDEX IF NOT EXISTS idx_bookings_appointment_at ON bookings (appointment_at);

CREATE TABLE IF NOT EXISTS waiting_list (
    customer_id   BIGINT PRIMARY KEY,
    customer_name TEXT NOT NULL,
    phone         TEXT NOT NULL,
    service       TEXT NOT NULL,
    joined_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_waiting_list_joined_at ON waiting_list (joined_at);

CREATE TABLE IF NOT EXISTS ratings (
    id          UUID PRIMARY KEY,
    customer_id BIGINT NOT NULL,
    booking_id  BIGINT REFERENCES bookings (id) ON DELETE SET NULL,
    stars       INT NOT NULL CHECK (stars BETWEEN 1 AND 5),
    feedback    TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_ratings_booking
    ON ratings (booking_id)
    WHERE booking_id IS NOT NULL;

CREATE INDEX IF NOT EXISTS idx_ratings_created_at ON ratings (created_at DESC);
`

func Migrate(ctx context.Context, q DBTX) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}
	return nil
}
