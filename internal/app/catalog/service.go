package catalog

import (
	"context"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/education"
	"personal-trainer-app/internal/domain/workouts"
)

type Store interface {
	// SearchWorkingOuts lists final-mode working-outs matching the finder,
	// soonest first.
	SearchWorkingOuts(ctx context.Context, f workouts.Finder) ([]workouts.WorkingOut, error)
	FindWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error)
	FindActor(ctx context.Context, id uint) (*actors.Actor, error)
	ListEducationRecords(ctx context.Context, trainerID uint) ([]education.Record, error)
}

// Service serves the public, read-only listings.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Search(ctx context.Context, f workouts.Finder) ([]workouts.WorkingOut, error) {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, apperr.Validation(apperr.ReasonInvalidPriceRange, "minPrice is greater than maxPrice")
	}
	return s.store.SearchWorkingOuts(ctx, f)
}

// Show returns a published working-out; drafts are reported as missing.
func (s *Service) Show(ctx context.Context, id uint) (*workouts.WorkingOut, error) {
	w, err := s.store.FindWorkingOut(ctx, id)
	if err != nil {
		return nil, err
	}
	if !w.IsFinalMode {
		return nil, apperr.NotFound("working-out", nil)
	}
	return w, nil
}

// Curriculum lists a trainer's education records.
func (s *Service) Curriculum(ctx context.Context, trainerID uint) ([]education.Record, error) {
	a, err := s.store.FindActor(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if a.Role != actors.RoleTrainer {
		return nil, apperr.NotFound("trainer", nil)
	}
	return s.store.ListEducationRecords(ctx, trainerID)
}
