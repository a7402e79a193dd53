package postgres

import (
	"context"
	"strings"

	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/education"
	"personal-trainer-app/internal/domain/workouts"
)

// Catalog serves the public listings: working-outs and trainer curricula.
type Catalog struct {
	*DB
}

func NewCatalog(db *DB) *Catalog {
	return &Catalog{DB: db}
}

// SearchWorkingOuts is the SQL rendition of workouts.Finder.Matches.
func (s *Catalog) SearchWorkingOuts(ctx context.Context, f workouts.Finder) ([]workouts.WorkingOut, error) {
	q := s.conn(ctx).Where("is_final_mode = ?", true)
	if kw := strings.ToLower(strings.TrimSpace(f.Keyword)); kw != "" {
		like := "%" + kw + "%"
		q = q.Where("LOWER(ticker) LIKE ? OR LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var out []workouts.WorkingOut
	if err := q.Order("start_moment, id").Find(&out).Error; err != nil {
		return nil, translate("working-outs", err)
	}
	return out, nil
}

func (s *Catalog) FindWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error) {
	var w workouts.WorkingOut
	if err := s.conn(ctx).First(&w, id).Error; err != nil {
		return nil, translate("working-out", err)
	}
	return &w, nil
}

func (s *Catalog) FindActor(ctx context.Context, id uint) (*actors.Actor, error) {
	return s.findActor(ctx, id)
}

func (s *Catalog) ListEducationRecords(ctx context.Context, trainerID uint) ([]education.Record, error) {
	var out []education.Record
	err := s.conn(ctx).Where("trainer_id = ?", trainerID).Order("start_date DESC, id").Find(&out).Error
	if err != nil {
		return nil, translate("education records", err)
	}
	return out, nil
}
