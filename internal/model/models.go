package model

import (
	"time"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"

	ActivityKindStandard        = "STANDARD"
	ActivityKindBehindTheScenes = "BEHIND_THE_SCENES"
)

type Booking struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingPerson struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	FullName    string    `json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Nationality string    `json:"nationality"`
	Residence   string    `json:"residence,omitempty"`
}

type BookingVehicle struct {
	ID                  string `json:"id"`
	BookingID           string `json:"booking_id"`
	VehicleType         string `json:"vehicle_type"`
	RegistrationCountry string `json:"registration_country"`
	VehiclesCount       int    `json:"vehicles_count"`
}

type Activity struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Kind        string         `json:"kind"`
	Rates       []ActivityRate `json:"rates"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ActivityRate struct {
	ID         string   `json:"id"`
	ActivityID string   `json:"activity_id"`
	AgeRange   string   `json:"age_range"`
	AmountUSD  float64  `json:"amount_usd"`
	AmountRWF  *float64 `json:"amount_rwf,omitempty"`
}

type BookingActivity struct {
	ID               string   `json:"id"`
	BookingID        string   `json:"booking_id"`
	ActivityID       string   `json:"activity_id"`
	ActivityName     string   `json:"activity_name,omitempty"`
	ActivityKind     string   `json:"activity_kind,omitempty"`
	NumberOfAdults   int      `json:"number_of_adults"`
	NumberOfChildren int      `json:"number_of_children"`
	NumberOfSeats    int      `json:"number_of_seats"`
	DefaultRate      *float64 `json:"default_rate,omitempty"`
}

// BookingAggregate is a booking with all of its billable lines.
type BookingAggregate struct {
	Booking    Booking           `json:"booking"`
	People     []BookingPerson   `json:"people"`
	Vehicles   []BookingVehicle  `json:"vehicles"`
	Activities []BookingActivity `json:"activities"`
}
