package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/park-booking-service/internal/cache"
	"github.com/anyulbade/park-booking-service/internal/dto"
	"github.com/anyulbade/park-booking-service/internal/model"
	"github.com/anyulbade/park-booking-service/internal/pricing"
)

type QuoteService struct {
	engine     *pricing.Engine
	bookings   BookingStore
	activities ActivityStore
	cache      cache.QuoteCache
	usdToRWF   float64
	now        Clock
}

func NewQuoteService(engine *pricing.Engine, bookings BookingStore, activities ActivityStore,
	quoteCache cache.QuoteCache, usdToRWF float64, now Clock) *QuoteService {
	if quoteCache == nil {
		quoteCache = cache.Noop{}
	}
	if now == nil {
		now = time.Now
	}
	return &QuoteService{
		engine:     engine,
		bookings:   bookings,
		activities: activities,
		cache:      quoteCache,
		usdToRWF:   usdToRWF,
		now:        now,
	}
}

type PersonLine struct {
	PersonID      string  `json:"person_id"`
	FullName      string  `json:"full_name"`
	Age           int     `json:"age"`
	Category      string  `json:"category"`
	StayPriceUSD  float64 `json:"stay_price_usd"`
	EntryPriceUSD float64 `json:"entry_price_usd"`
}

type VehicleLine struct {
	VehicleID           string  `json:"vehicle_id"`
	VehicleType         string  `json:"vehicle_type"`
	RegistrationCountry string  `json:"registration_country"`
	VehiclesCount       int     `json:"vehicles_count"`
	PriceUSD            float64 `json:"price_usd"`
}

type ActivityLine struct {
	BookingActivityID string  `json:"booking_activity_id"`
	ActivityName      string  `json:"activity_name"`
	FlatRate          bool    `json:"flat_rate"`
	PriceUSD          float64 `json:"price_usd"`
	PriceRWF          float64 `json:"price_rwf"`
}

// BookingQuote prices every line of a booking. People are billed at the stay
// fee; the entry fee is reported alongside for comparison only.
type BookingQuote struct {
	BookingID    string         `json:"booking_id"`
	Reference    string         `json:"reference"`
	Nights       int            `json:"nights"`
	People       []PersonLine   `json:"people"`
	Vehicles     []VehicleLine  `json:"vehicles"`
	Activities   []ActivityLine `json:"activities"`
	PeopleUSD    float64        `json:"people_usd"`
	VehiclesUSD  float64        `json:"vehicles_usd"`
	ActivityUSD  float64        `json:"activities_usd"`
	TotalUSD     float64        `json:"total_usd"`
	TotalRWF     float64        `json:"total_rwf"`
	USDToRWFRate float64        `json:"usd_to_rwf_rate"`
	QuotedAt     time.Time      `json:"quoted_at"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, &validationErr{field: field, message: fmt.Sprintf("'%s' is not a YYYY-MM-DD date", value)}
	}
	return t, nil
}

func (s *QuoteService) QuotePerson(req *dto.PersonQuoteRequest) (*dto.PersonQuoteResponse, error) {
	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	p := pricing.Person{
		DateOfBirth: dob,
		Nationality: req.Nationality,
		Residence:   req.Residence,
		StartDate:   start,
		EndDate:     end,
	}
	now := s.now()
	stay := s.engine.BookingPersonPrice(p, now)
	entry := s.engine.EntryPrice(p, now)

	return &dto.PersonQuoteResponse{
		Age:           pricing.Age(dob, now),
		Nights:        pricing.Nights(start, end),
		Category:      string(pricing.Category(req.Nationality, req.Residence)),
		StayPriceUSD:  stay,
		StayPriceRWF:  pricing.ToRWF(stay, s.usdToRWF),
		EntryPriceUSD: entry,
		EntryPriceRWF: pricing.ToRWF(entry, s.usdToRWF),
	}, nil
}

func (s *QuoteService) QuoteVehicle(req *dto.VehicleQuoteRequest) *dto.QuoteResponse {
	usd := s.engine.VehiclePrice(pricing.Vehicle{
		Type:                pricing.VehicleType(req.VehicleType),
		RegistrationCountry: req.RegistrationCountry,
		Count:               req.VehiclesCount,
	})
	return s.quote(usd)
}

func (s *QuoteService) QuoteBehindTheScenes(req *dto.BehindTheScenesQuoteRequest) *dto.QuoteResponse {
	return s.quote(s.engine.BehindTheScenesPrice(req.NumberOfAdults, req.NumberOfChildren))
}

func (s *QuoteService) QuoteActivity(ctx context.Context, req *dto.ActivityQuoteRequest) (*dto.QuoteResponse, error) {
	a := pricing.BookingActivity{
		NumberOfAdults:   req.NumberOfAdults,
		NumberOfChildren: req.NumberOfChildren,
		NumberOfSeats:    req.NumberOfSeats,
	}
	if req.DefaultRate != nil {
		a.DefaultRate = *req.DefaultRate
	}

	kind := model.ActivityKindStandard
	if req.ActivityID != "" {
		activity, err := s.activities.FindByID(ctx, req.ActivityID)
		if err != nil {
			return nil, notFound(err, "activity", req.ActivityID)
		}
		kind = activity.Kind
		a.Rates = toPricingRates(activity.Rates)
	} else {
		for _, r := range req.Rates {
			a.Rates = append(a.Rates, pricing.ActivityRate{
				AgeRange:  pricing.AgeRange(r.AgeRange),
				AmountUSD: r.AmountUSD,
				AmountRWF: r.AmountRWF,
			})
		}
	}

	usd, rwf := s.priceActivity(kind, a)
	return &dto.QuoteResponse{AmountUSD: roundCents(usd), AmountRWF: rwf}, nil
}

func (s *QuoteService) quote(usd float64) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		AmountUSD: roundCents(usd),
		AmountRWF: pricing.ToRWF(usd, s.usdToRWF),
	}
}

// priceActivity returns the USD and RWF price of one booked activity.
// Behind-the-scenes visits are priced by head count unless a flat rate is set.
func (s *QuoteService) priceActivity(kind string, a pricing.BookingActivity) (float64, float64) {
	if kind == model.ActivityKindBehindTheScenes && a.DefaultRate == 0 {
		usd := s.engine.BehindTheScenesPrice(a.NumberOfAdults, a.NumberOfChildren)
		return usd, pricing.ToRWF(usd, s.usdToRWF)
	}
	return pricing.ActivityPrice(a), pricing.ActivityPriceRWF(a, s.usdToRWF)
}

// QuoteBooking prices a stored booking. Results are cached per booking; the
// cache TTL bounds how stale an age-dependent price can get.
func (s *QuoteService) QuoteBooking(ctx context.Context, bookingID string) (*BookingQuote, error) {
	var cached BookingQuote
	err := s.cache.Get(ctx, bookingID, &cached)
	switch {
	case err == nil:
		return &cached, nil
	case errors.Is(err, cache.ErrMiss):
		log.Ctx(ctx).Debug().Str("booking_id", bookingID).Msg("quote cache miss")
	default:
		log.Ctx(ctx).Warn().Err(err).Str("booking_id", bookingID).Msg("quote cache read failed")
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFound(err, "booking", bookingID)
	}

	var (
		people     []model.BookingPerson
		vehicles   []model.BookingVehicle
		activities []model.BookingActivity
		rates      map[string][]model.ActivityRate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		people, err = s.bookings.ListPeople(gctx, bookingID)
		return err
	})
	g.Go(func() error {
		var err error
		vehicles, err = s.bookings.ListVehicles(gctx, bookingID)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.bookings.ListActivities(gctx, bookingID)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(activities))
		for _, a := range activities {
			ids = append(ids, a.ActivityID)
		}
		rates, err = s.activities.RatesFor(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load booking lines: %w", err)
	}

	quote := s.priceBooking(booking, people, vehicles, activities, rates)

	if err := s.cache.Set(ctx, bookingID, quote); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("booking_id", bookingID).Msg("quote cache write failed")
	}
	return quote, nil
}

// ForgetBookingQuote drops the cached quote of a booking so the next read
// re-prices it at the current date.
func (s *QuoteService) ForgetBookingQuote(ctx context.Context, bookingID string) {
	if err := s.cache.Delete(ctx, bookingID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("booking_id", bookingID).Msg("quote cache delete failed")
	}
}

func (s *QuoteService) priceBooking(b *model.Booking, people []model.BookingPerson, vehicles []model.BookingVehicle,
	activities []model.BookingActivity, rates map[string][]model.ActivityRate) *BookingQuote {
	now := s.now()
	q := &BookingQuote{
		BookingID:    b.ID,
		Reference:    b.Reference,
		Nights:       pricing.Nights(b.StartDate, b.EndDate),
		People:       make([]PersonLine, 0, len(people)),
		Vehicles:     make([]VehicleLine, 0, len(vehicles)),
		Activities:   make([]ActivityLine, 0, len(activities)),
		USDToRWFRate: s.usdToRWF,
		QuotedAt:     now,
	}

	var activityRWF float64

	for _, p := range people {
		pp := toPricingPerson(p, b.StartDate, b.EndDate)
		line := PersonLine{
			PersonID:      p.ID,
			FullName:      p.FullName,
			Age:           pricing.Age(p.DateOfBirth, now),
			Category:      string(pricing.Category(p.Nationality, p.Residence)),
			StayPriceUSD:  s.engine.BookingPersonPrice(pp, now),
			EntryPriceUSD: s.engine.EntryPrice(pp, now),
		}
		q.People = append(q.People, line)
		q.PeopleUSD += line.StayPriceUSD
	}

	for _, v := range vehicles {
		line := VehicleLine{
			VehicleID:           v.ID,
			VehicleType:         v.VehicleType,
			RegistrationCountry: v.RegistrationCountry,
			VehiclesCount:       v.VehiclesCount,
			PriceUSD:            s.engine.VehiclePrice(toPricingVehicle(v)),
		}
		q.Vehicles = append(q.Vehicles, line)
		q.VehiclesUSD += line.PriceUSD
	}

	for _, a := range activities {
		pa := toPricingActivity(a, rates[a.ActivityID])
		usd, rwf := s.priceActivity(a.ActivityKind, pa)
		q.Activities = append(q.Activities, ActivityLine{
			BookingActivityID: a.ID,
			ActivityName:      a.ActivityName,
			FlatRate:          pa.DefaultRate != 0,
			PriceUSD:          roundCents(usd),
			PriceRWF:          rwf,
		})
		q.ActivityUSD += usd
		activityRWF += rwf
	}

	q.PeopleUSD = roundCents(q.PeopleUSD)
	q.VehiclesUSD = roundCents(q.VehiclesUSD)
	q.ActivityUSD = roundCents(q.ActivityUSD)
	q.TotalUSD = roundCents(q.PeopleUSD + q.VehiclesUSD + q.ActivityUSD)
	q.TotalRWF = pricing.ToRWF(q.PeopleUSD+q.VehiclesUSD, s.usdToRWF) + activityRWF
	return q
}
