package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type seedRate struct {
	AgeRange  string
	AmountUSD float64
	AmountRWF *float64
}

type seedActivity struct {
	Name        string
	Description string
	Kind        string
	Rates       []seedRate
}

func rwf(v float64) *float64 { return &v }

var activities = []seedActivity{
	{
		Name:        "Game Drive",
		Description: "Guided morning game drive in a park vehicle",
		Kind:        "STANDARD",
		Rates: []seedRate{
			{AgeRange: "adults", AmountUSD: 40},
			{AgeRange: "children", AmountUSD: 20},
		},
	},
	{
		Name:        "Boat Trip",
		Description: "Shared boat trip on Lake Ihema",
		Kind:        "STANDARD",
		Rates: []seedRate{
			{AgeRange: "adults", AmountUSD: 35, AmountRWF: rwf(45000)},
			{AgeRange: "children", AmountUSD: 25, AmountRWF: rwf(32000)},
		},
	},
	{
		Name:        "Night Drive",
		Description: "Evening drive with a spotlight ranger",
		Kind:        "STANDARD",
		Rates: []seedRate{
			{AgeRange: "adults", AmountUSD: 50},
		},
	},
	{
		Name:        "Guided Walk",
		Description: "Nature walk on the lake shore",
		Kind:        "STANDARD",
		Rates: []seedRate{
			{AgeRange: "adults", AmountUSD: 30},
			{AgeRange: "children", AmountUSD: 15},
		},
	},
	{
		Name:        "Behind the Scenes",
		Description: "Visit to the park operations and rhino tracking teams",
		Kind:        "BEHIND_THE_SCENES",
	},
}

// SeedData inserts the activity catalogue. It is a no-op once activities
// exist.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		log.Info().Int("activities", count).Msg("seed data already present, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rates := 0
	for _, a := range activities {
		var id string
		err := tx.QueryRow(ctx,
			`INSERT INTO activities (name, description, kind) VALUES ($1, $2, $3) RETURNING id`,
			a.Name, a.Description, a.Kind).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert activity %s: %w", a.Name, err)
		}

		for _, r := range a.Rates {
			if _, err := tx.Exec(ctx,
				`INSERT INTO activity_rates (activity_id, age_range, amount_usd, amount_rwf) VALUES ($1, $2, $3, $4)`,
				id, r.AgeRange, r.AmountUSD, r.AmountRWF); err != nil {
				return fmt.Errorf("insert rate for %s: %w", a.Name, err)
			}
			rates++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info().
		Int("activities", len(activities)).
		Int("rates", rates).
		Msg("seed data inserted")
	return nil
}
