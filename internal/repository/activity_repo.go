package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/park-booking-service/internal/model"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) List(ctx context.Context, kind string) ([]model.Activity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), kind, created_at
		FROM activities
		WHERE ($1 = '' OR kind = $1)
		ORDER BY name`, kind)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []model.Activity
	var ids []string
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Kind, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rates, err := r.RatesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range activities {
		activities[i].Rates = rates[activities[i].ID]
	}
	return activities, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*model.Activity, error) {
	a := &model.Activity{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), kind, created_at
		FROM activities WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Description, &a.Kind, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	rates, err := r.RatesFor(ctx, []string{a.ID})
	if err != nil {
		return nil, err
	}
	a.Rates = rates[a.ID]
	return a, nil
}

func (r *ActivityRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM activities WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// RatesFor returns the rate rows of each activity, keyed by activity id.
func (r *ActivityRepository) RatesFor(ctx context.Context, activityIDs []string) (map[string][]model.ActivityRate, error) {
	rates := make(map[string][]model.ActivityRate, len(activityIDs))
	if len(activityIDs) == 0 {
		return rates, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, activity_id, age_range, amount_usd, amount_rwf
		FROM activity_rates
		WHERE activity_id = ANY($1::uuid[])
		ORDER BY activity_id, age_range`, activityIDs)
	if err != nil {
		return nil, fmt.Errorf("list activity rates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rate model.ActivityRate
		if err := rows.Scan(&rate.ID, &rate.ActivityID, &rate.AgeRange, &rate.AmountUSD, &rate.AmountRWF); err != nil {
			return nil, fmt.Errorf("scan activity rate: %w", err)
		}
		rates[rate.ActivityID] = append(rates[rate.ActivityID], rate)
	}
	return rates, rows.Err()
}
