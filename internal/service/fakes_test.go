package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/anyulbade/park-booking-service/internal/cache"
	"github.com/anyulbade/park-booking-service/internal/model"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

type fakeBookingStore struct {
	mu         sync.Mutex
	bookings   map[string]model.Booking
	people     map[string][]model.BookingPerson
	vehicles   map[string][]model.BookingVehicle
	activities map[string][]model.BookingActivity
	findCalls  int
	inserted   []*model.BookingAggregate
	insertErr  error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		bookings:   map[string]model.Booking{},
		people:     map[string][]model.BookingPerson{},
		vehicles:   map[string][]model.BookingVehicle{},
		activities: map[string][]model.BookingActivity{},
	}
}

func (f *fakeBookingStore) Insert(_ context.Context, agg *model.BookingAggregate) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	agg.Booking.ID = fmt.Sprintf("booking-%d", len(f.inserted)+1)
	agg.Booking.CreatedAt = fixedNow
	f.inserted = append(f.inserted, agg)
	return nil
}

func (f *fakeBookingStore) FindByID(_ context.Context, id string) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	b, ok := f.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &b, nil
}

func (f *fakeBookingStore) List(_ context.Context, status string, limit, offset int) ([]model.Booking, int, error) {
	var out []model.Booking
	for _, b := range f.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeBookingStore) ListPeople(_ context.Context, id string) ([]model.BookingPerson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.people[id], nil
}

func (f *fakeBookingStore) ListVehicles(_ context.Context, id string) ([]model.BookingVehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vehicles[id], nil
}

func (f *fakeBookingStore) ListActivities(_ context.Context, id string) ([]model.BookingActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activities[id], nil
}

type fakeActivityStore struct {
	activities map[string]model.Activity
}

func (f *fakeActivityStore) List(_ context.Context, kind string) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range f.activities {
		if kind == "" || a.Kind == kind {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) FindByID(_ context.Context, id string) (*model.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (f *fakeActivityStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.activities[id]
	return ok, nil
}

func (f *fakeActivityStore) RatesFor(_ context.Context, ids []string) (map[string][]model.ActivityRate, error) {
	out := map[string][]model.ActivityRate{}
	for _, id := range ids {
		if a, ok := f.activities[id]; ok {
			out[id] = a.Rates
		}
	}
	return out, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, id string, dst any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[id]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, dst)
}

func (c *memoryCache) Set(_ context.Context, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }

const (
	gameDriveID = "5b0c1f7e-8d7a-4f51-9a3e-000000000001"
	btsID       = "5b0c1f7e-8d7a-4f51-9a3e-000000000002"
)

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{activities: map[string]model.Activity{
		gameDriveID: {
			ID:   gameDriveID,
			Name: "Game Drive",
			Kind: model.ActivityKindStandard,
			Rates: []model.ActivityRate{
				{ActivityID: gameDriveID, AgeRange: "adults", AmountUSD: 40},
				{ActivityID: gameDriveID, AgeRange: "children", AmountUSD: 20, AmountRWF: ptr(25000)},
			},
		},
		btsID: {
			ID:   btsID,
			Name: "Behind the Scenes",
			Kind: model.ActivityKindBehindTheScenes,
		},
	}}
}
