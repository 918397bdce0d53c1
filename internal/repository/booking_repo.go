package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/park-booking-service/internal/model"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Insert stores the booking and all of its lines in one transaction and fills
// in the generated ids.
func (r *BookingRepository) Insert(ctx context.Context, agg *model.BookingAggregate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	b := &agg.Booking
	err = tx.QueryRow(ctx,
		`INSERT INTO bookings (reference, start_date, end_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		b.Reference, b.StartDate, b.EndDate, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range agg.People {
		p := &agg.People[i]
		p.BookingID = b.ID
		batch.Queue(
			`INSERT INTO booking_people (booking_id, full_name, date_of_birth, nationality, residence)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''))
			RETURNING id`,
			p.BookingID, p.FullName, p.DateOfBirth, p.Nationality, p.Residence,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&p.ID)
		})
	}
	for i := range agg.Vehicles {
		v := &agg.Vehicles[i]
		v.BookingID = b.ID
		batch.Queue(
			`INSERT INTO booking_vehicles (booking_id, vehicle_type, registration_country, vehicles_count)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			v.BookingID, v.VehicleType, v.RegistrationCountry, v.VehiclesCount,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&v.ID)
		})
	}
	for i := range agg.Activities {
		a := &agg.Activities[i]
		a.BookingID = b.ID
		batch.Queue(
			`INSERT INTO booking_activities (booking_id, activity_id, number_of_adults, number_of_children, number_of_seats, default_rate)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			a.BookingID, a.ActivityID, a.NumberOfAdults, a.NumberOfChildren, a.NumberOfSeats, a.DefaultRate,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&a.ID)
		})
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert booking lines: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	b := &model.Booking{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, reference, start_date, end_date, status, created_at
		FROM bookings WHERE id = $1`, id).
		Scan(&b.ID, &b.Reference, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, status string, limit, offset int) ([]model.Booking, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR status = $1)`, status).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, reference, start_date, end_date, status, created_at
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

func (r *BookingRepository) ListPeople(ctx context.Context, bookingID string) ([]model.BookingPerson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, booking_id, full_name, date_of_birth, nationality, COALESCE(residence, '')
		FROM booking_people WHERE booking_id = $1 ORDER BY full_name, id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking people: %w", err)
	}
	defer rows.Close()

	var people []model.BookingPerson
	for rows.Next() {
		var p model.BookingPerson
		if err := rows.Scan(&p.ID, &p.BookingID, &p.FullName, &p.DateOfBirth, &p.Nationality, &p.Residence); err != nil {
			return nil, fmt.Errorf("scan booking person: %w", err)
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *BookingRepository) ListVehicles(ctx context.Context, bookingID string) ([]model.BookingVehicle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, booking_id, vehicle_type, registration_country, vehicles_count
		FROM booking_vehicles WHERE booking_id = $1 ORDER BY id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.BookingVehicle
	for rows.Next() {
		var v model.BookingVehicle
		if err := rows.Scan(&v.ID, &v.BookingID, &v.VehicleType, &v.RegistrationCountry, &v.VehiclesCount); err != nil {
			return nil, fmt.Errorf("scan booking vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *BookingRepository) ListActivities(ctx context.Context, bookingID string) ([]model.BookingActivity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ba.id, ba.booking_id, ba.activity_id, a.name, a.kind,
			ba.number_of_adults, ba.number_of_children, ba.number_of_seats, ba.default_rate
		FROM booking_activities ba
		JOIN activities a ON a.id = ba.activity_id
		WHERE ba.booking_id = $1
		ORDER BY a.name, ba.id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking activities: %w", err)
	}
	defer rows.Close()

	var activities []model.BookingActivity
	for rows.Next() {
		var a model.BookingActivity
		if err := rows.Scan(&a.ID, &a.BookingID, &a.ActivityID, &a.ActivityName, &a.ActivityKind,
			&a.NumberOfAdults, &a.NumberOfChildren, &a.NumberOfSeats, &a.DefaultRate); err != nil {
			return nil, fmt.Errorf("scan booking activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
