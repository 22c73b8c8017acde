package infra

import (
	"errors"

	"booking-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindSlotConflict       RepositoryErrorKind = "SLOT_CONFLICT"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	pgErrCodeUniqueViolation = "23505"

	// Constraint names from the embedded schema; used to tell a lost slot
	// race apart from a duplicate customer booking.
	constraintSlotUnique  = "uq_bookings_slot"
	constraintBookingsPK  = "bookings_pkey"
	constraintRatingOnce  = "uq_ratings_booking"
)

// ClassifyPgError maps low-level postgres errors onto repository kinds so the
// usecase layer never inspects pg error codes itself.
func ClassifyPgError(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return WrapRepoErr(msg, err, KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		switch pgErr.ConstraintName {
		case constraintSlotUnique:
			return WrapRepoErr(msg, err, KindSlotConflict)
		case constraintBookingsPK, constraintRatingOnce:
			return WrapRepoErr(msg, err, KindDuplicateKey)
		default:
			return WrapRepoErr(msg, err, KindDuplicateKey)
		}
	}
	return WrapRepoErr(msg, err)
}
