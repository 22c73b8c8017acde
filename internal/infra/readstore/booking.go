package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/schedule"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(q db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: q}
}

const bookingViewColumns = `
customer_id, customer_name, phone, service, day, slot_time, scheduled_date,
urgency, status, appointment_at, reminder_sent_at, created_at, updated_at`

func (r *BookingReadStore) FindByCustomer(ctx context.Context, customerID int64) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingViewColumns+` FROM bookings WHERE customer_id = $1`,
		customerID)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	return r.list(ctx,
		`SELECT `+bookingViewColumns+` FROM bookings ORDER BY appointment_at`)
}

func (r *BookingReadStore) ListByStatus(ctx context.Context, status string) ([]*queries.BookingView, error) {
	return r.list(ctx,
		`SELECT `+bookingViewColumns+` FROM bookings WHERE status = $1 ORDER BY appointment_at`,
		status)
}

// ListUpcomingActive returns occupying bookings whose appointment falls in
// [from, to), soonest first.
func (r *BookingReadStore) ListUpcomingActive(ctx context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	return r.list(ctx,
		`SELECT `+bookingViewColumns+` FROM bookings
		 WHERE status IN ('pending', 'confirmed')
		   AND appointment_at >= $1 AND appointment_at < $2
		 ORDER BY appointment_at`,
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
}

// OccupiedSlots returns the (day, slot) pairs currently held by occupying
// bookings.
func (r *BookingReadStore) OccupiedSlots(ctx context.Context) (schedule.OccupiedSet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT day, slot_time FROM bookings WHERE status IN ('pending', 'confirmed')`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	occupied := make(schedule.OccupiedSet)
	for rows.Next() {
		var day, slot string
		if err := rows.Scan(&day, &slot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		occupied[schedule.SlotKey{Day: day, Label: slot}] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied slots", err)
	}
	return occupied, nil
}

func (r *BookingReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view           queries.BookingView
		scheduledDate  pgtype.Date
		appointmentAt  pgtype.Timestamptz
		reminderSentAt pgtype.Timestamptz
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.CustomerID, &view.CustomerName, &view.Phone, &view.Service,
		&view.Day, &view.SlotTime, &scheduledDate, &view.Urgency, &view.Status,
		&appointmentAt, &reminderSentAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	view.ScheduledDate = scheduledDate.Time
	view.AppointmentAt = appointmentAt.Time
	view.ReminderSentAt = pgconv.TimePtrFromPgtype(reminderSentAt)
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
