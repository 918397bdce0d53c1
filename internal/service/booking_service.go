package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/park-booking-service/internal/dto"
	"github.com/anyulbade/park-booking-service/internal/model"
)

type BookingService struct {
	bookings   BookingStore
	activities ActivityStore
}

func NewBookingService(bookings BookingStore, activities ActivityStore) *BookingService {
	return &BookingService{bookings: bookings, activities: activities}
}

func newReference() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// CreateBooking validates every line of the request and stores the booking.
// Validation problems are returned as a list and nothing is stored.
func (s *BookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*model.BookingAggregate, []dto.ValidationError, error) {
	var validationErrors []dto.ValidationError
	addErr := func(index int, err error) error {
		if ve, ok := err.(*validationErr); ok {
			validationErrors = append(validationErrors, dto.ValidationError{
				Index:   index,
				Field:   ve.field,
				Message: ve.message,
			})
			return nil
		}
		return err
	}

	start, startErr := parseDate("start_date", req.StartDate)
	end, endErr := parseDate("end_date", req.EndDate)
	for _, err := range []error{startErr, endErr} {
		if err != nil {
			if err := addErr(0, err); err != nil {
				return nil, nil, err
			}
		}
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		validationErrors = append(validationErrors, dto.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	status := req.Status
	if status == "" {
		status = model.BookingStatusPending
	}

	agg := &model.BookingAggregate{
		Booking: model.Booking{
			Reference: newReference(),
			StartDate: start,
			EndDate:   end,
			Status:    status,
		},
		People:     make([]model.BookingPerson, 0, len(req.People)),
		Vehicles:   make([]model.BookingVehicle, 0, len(req.Vehicles)),
		Activities: make([]model.BookingActivity, 0, len(req.Activities)),
	}

	for i, p := range req.People {
		dob, err := parseDate(fmt.Sprintf("people[%d].date_of_birth", i), p.DateOfBirth)
		if err != nil {
			if err := addErr(i, err); err != nil {
				return nil, nil, err
			}
			continue
		}
		agg.People = append(agg.People, model.BookingPerson{
			FullName:    p.FullName,
			DateOfBirth: dob,
			Nationality: p.Nationality,
			Residence:   p.Residence,
		})
	}

	for _, v := range req.Vehicles {
		agg.Vehicles = append(agg.Vehicles, model.BookingVehicle{
			VehicleType:         v.VehicleType,
			RegistrationCountry: v.RegistrationCountry,
			VehiclesCount:       v.VehiclesCount,
		})
	}

	for i, a := range req.Activities {
		if err := s.validateActivity(ctx, i, &a); err != nil {
			if err := addErr(i, err); err != nil {
				return nil, nil, err
			}
			continue
		}
		agg.Activities = append(agg.Activities, model.BookingActivity{
			ActivityID:       a.ActivityID,
			NumberOfAdults:   a.NumberOfAdults,
			NumberOfChildren: a.NumberOfChildren,
			NumberOfSeats:    a.NumberOfSeats,
			DefaultRate:      a.DefaultRate,
		})
	}

	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	if err := s.bookings.Insert(ctx, agg); err != nil {
		return nil, nil, err
	}
	return agg, nil, nil
}

func (s *BookingService) validateActivity(ctx context.Context, index int, a *dto.BookingActivityInput) error {
	exists, err := s.activities.Exists(ctx, a.ActivityID)
	if err != nil {
		return fmt.Errorf("check activity: %w", err)
	}
	if !exists {
		return &validationErr{
			field:   fmt.Sprintf("activities[%d].activity_id", index),
			message: fmt.Sprintf("activity '%s' not found", a.ActivityID),
		}
	}
	return nil
}

// GetBooking loads a booking with all of its lines.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*model.BookingAggregate, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "booking", id)
	}

	agg := &model.BookingAggregate{Booking: *booking}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		agg.People, err = s.bookings.ListPeople(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		agg.Vehicles, err = s.bookings.ListVehicles(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		agg.Activities, err = s.bookings.ListActivities(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load booking lines: %w", err)
	}

	if agg.People == nil {
		agg.People = []model.BookingPerson{}
	}
	if agg.Vehicles == nil {
		agg.Vehicles = []model.BookingVehicle{}
	}
	if agg.Activities == nil {
		agg.Activities = []model.BookingActivity{}
	}
	return agg, nil
}

func (s *BookingService) ListBookings(ctx context.Context, status string, limit, offset int) ([]model.Booking, int, error) {
	bookings, total, err := s.bookings.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, total, nil
}
