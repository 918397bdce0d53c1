package dto

const DateLayout = "2006-01-02"

type PersonQuoteRequest struct {
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Nationality string `json:"nationality" binding:"required"`
	Residence   string `json:"residence"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type VehicleQuoteRequest struct {
	VehicleType         string `json:"vehicle_type" binding:"required"`
	RegistrationCountry string `json:"registration_country"`
	VehiclesCount       int    `json:"vehicles_count" binding:"gte=0"`
}

type RateInput struct {
	AgeRange  string   `json:"age_range" binding:"required,oneof=adults children"`
	AmountUSD float64  `json:"amount_usd" binding:"gte=0"`
	AmountRWF *float64 `json:"amount_rwf" binding:"omitempty,gte=0"`
}

// ActivityQuoteRequest prices an activity either against rates given inline
// or, when ActivityID is set, against the stored rates of that activity.
type ActivityQuoteRequest struct {
	ActivityID       string      `json:"activity_id" binding:"omitempty,uuid"`
	Rates            []RateInput `json:"rates" binding:"omitempty,max=10,dive"`
	DefaultRate      *float64    `json:"default_rate" binding:"omitempty,gte=0"`
	NumberOfAdults   int         `json:"number_of_adults" binding:"gte=0"`
	NumberOfChildren int         `json:"number_of_children" binding:"gte=0"`
	NumberOfSeats    int         `json:"number_of_seats" binding:"gte=0"`
}

type BehindTheScenesQuoteRequest struct {
	NumberOfAdults   int `json:"number_of_adults" binding:"gte=0"`
	NumberOfChildren int `json:"number_of_children" binding:"gte=0"`
}

type BookingPersonInput struct {
	FullName    string `json:"full_name" binding:"required,max=200"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Nationality string `json:"nationality" binding:"required,len=2"`
	Residence   string `json:"residence" binding:"omitempty,len=2"`
}

type BookingVehicleInput struct {
	VehicleType         string `json:"vehicle_type" binding:"required,max=40"`
	RegistrationCountry string `json:"registration_country" binding:"required,len=2"`
	VehiclesCount       int    `json:"vehicles_count" binding:"required,gt=0"`
}

type BookingActivityInput struct {
	ActivityID       string   `json:"activity_id" binding:"required,uuid"`
	NumberOfAdults   int      `json:"number_of_adults" binding:"gte=0"`
	NumberOfChildren int      `json:"number_of_children" binding:"gte=0"`
	NumberOfSeats    int      `json:"number_of_seats" binding:"gte=0"`
	DefaultRate      *float64 `json:"default_rate" binding:"omitempty,gte=0"`
}

type CreateBookingRequest struct {
	StartDate  string                 `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string                 `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status     string                 `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	People     []BookingPersonInput   `json:"people" binding:"required,min=1,max=100,dive"`
	Vehicles   []BookingVehicleInput  `json:"vehicles" binding:"max=50,dive"`
	Activities []BookingActivityInput `json:"activities" binding:"max=50,dive"`
}
