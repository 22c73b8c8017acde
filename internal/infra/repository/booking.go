package repository

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
    customer_id, customer_name, phone, service, day, slot_time,
    scheduled_date, urgency, status, appointment_at, reminder_sent_at,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING id`

func (r *BookingRepository) Insert(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	var rowID int64
	err := tx.QueryRow(ctx, insertBookingSQL,
		b.CustomerID(),
		b.Name().String(),
		b.Phone().String(),
		b.Service().String(),
		b.Day(),
		b.Slot().Label(),
		pgconv.DateToPgtype(b.ScheduledDate()),
		string(b.Urgency()),
		string(b.Status()),
		pgconv.TimeToPgtype(b.AppointmentAt()),
		pgconv.TimePtrToPgtype(b.ReminderSentAt()),
		pgconv.TimeToPgtype(b.CreatedAt()),
	).Scan(&rowID)
	if err != nil {
		return 0, infra.ClassifyPgError("failed to insert booking", err)
	}
	return rowID, nil
}

func (r *BookingRepository) Replace(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	// Delete first so a rebooking customer gets a fresh row id; the old id
	// stays behind only as a nulled reference on any rating.
	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE customer_id = $1`, b.CustomerID()); err != nil {
		return 0, infra.WrapRepoErr("failed to clear prior booking", err)
	}
	return r.Insert(ctx, tx, b)
}

const findBookingByCustomerSQL = `
SELECT id, customer_id, customer_name, phone, service, day, slot_time,
       scheduled_date, urgency, status, appointment_at, reminder_sent_at,
       created_at, updated_at
FROM bookings
WHERE customer_id = $1`

func (r *BookingRepository) FindByCustomer(ctx context.Context, tx db.DBTX, customerID int64) (*shared.BookingRecord, error) {
	rec, err := scanBookingRow(tx.QueryRow(ctx, findBookingByCustomerSQL, customerID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return rec, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, customerID int64, status booking.Status, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE customer_id = $3`,
		string(status), pgconv.TimeToPgtype(now), customerID)
	if err != nil {
		return infra.ClassifyPgError("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, customerID int64) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE customer_id = $1`, customerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

const claimDueRemindersSQL = `
SELECT id, customer_id, customer_name, phone, service, day, slot_time,
       scheduled_date, urgency, status, appointment_at, reminder_sent_at,
       created_at, updated_at
FROM bookings
WHERE status = 'confirmed'
  AND reminder_sent_at IS NULL
  AND appointment_at > $1
  AND appointment_at <= $2
ORDER BY appointment_at
FOR UPDATE SKIP LOCKED`

func (r *BookingRepository) ClaimDueReminders(ctx context.Context, tx db.DBTX, from, to time.Time) ([]*shared.BookingRecord, error) {
	rows, err := tx.Query(ctx, claimDueRemindersSQL,
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due reminders", err)
	}
	defer rows.Close()

	var records []*shared.BookingRecord
	for rows.Next() {
		rec, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan due reminder", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read due reminders", err)
	}
	return records, nil
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, tx db.DBTX, customerIDs []int64, sentAt time.Time) error {
	if len(customerIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		`UPDATE bookings SET reminder_sent_at = $1, updated_at = $1 WHERE customer_id = ANY($2)`,
		pgconv.TimeToPgtype(sentAt), customerIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminders sent", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRow(row rowScanner) (*shared.BookingRecord, error) {
	var (
		rowID          int64
		customerID     int64
		name           string
		phone          string
		service        string
		day            string
		slotTime       string
		scheduledDate  pgtype.Date
		urgency        string
		status         string
		appointmentAt  pgtype.Timestamptz
		reminderSentAt pgtype.Timestamptz
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	if err := row.Scan(&rowID, &customerID, &name, &phone, &service, &day, &slotTime,
		&scheduledDate, &urgency, &status, &appointmentAt, &reminderSentAt,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	b := booking.Reconstruct(
		customerID,
		booking.ReconstructName(name),
		booking.ReconstructPhone(phone),
		booking.ReconstructServiceType(service),
		day,
		schedule.ReconstructSlot(slotTime),
		scheduledDate.Time,
		booking.Urgency(urgency), booking.Status(status),
		appointmentAt.Time,
		pgconv.TimePtrFromPgtype(reminderSentAt),
		createdAt.Time, updatedAt.Time,
	)
	return &shared.BookingRecord{RowID: rowID, Booking: b}, nil
}
