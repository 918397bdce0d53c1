package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/anyulbade/park-booking-service/internal/model"
)

// ErrNotFound is returned when a requested booking or activity does not exist.
var ErrNotFound = errors.New("resource not found")

// Clock returns the instant ages are evaluated at.
type Clock func() time.Time

type BookingStore interface {
	Insert(ctx context.Context, agg *model.BookingAggregate) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, status string, limit, offset int) ([]model.Booking, int, error)
	ListPeople(ctx context.Context, bookingID string) ([]model.BookingPerson, error)
	ListVehicles(ctx context.Context, bookingID string) ([]model.BookingVehicle, error)
	ListActivities(ctx context.Context, bookingID string) ([]model.BookingActivity, error)
}

type ActivityStore interface {
	List(ctx context.Context, kind string) ([]model.Activity, error)
	FindByID(ctx context.Context, id string) (*model.Activity, error)
	Exists(ctx context.Context, id string) (bool, error)
	RatesFor(ctx context.Context, activityIDs []string) (map[string][]model.ActivityRate, error)
}

func notFound(err error, what, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s '%s': %w", what, id, ErrNotFound)
	}
	return err
}

type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	var ve *validationErr
	return errors.As(err, &ve)
}
