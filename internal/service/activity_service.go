package service

import (
	"context"

	"github.com/anyulbade/park-booking-service/internal/model"
)

type ActivityService struct {
	activities ActivityStore
}

func NewActivityService(activities ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) ListActivities(ctx context.Context, kind string) ([]model.Activity, error) {
	activities, err := s.activities.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []model.Activity{}
	}
	for i := range activities {
		if activities[i].Rates == nil {
			activities[i].Rates = []model.ActivityRate{}
		}
	}
	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	a, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "activity", id)
	}
	if a.Rates == nil {
		a.Rates = []model.ActivityRate{}
	}
	return a, nil
}
