package postgres

import (
	"context"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/workouts"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Applications is the admission workflow's repository.
type Applications struct {
	*DB
}

func NewApplications(db *DB) *Applications {
	return &Applications{DB: db}
}

func (s *Applications) FindWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error) {
	var w workouts.WorkingOut
	if err := s.conn(ctx).First(&w, id).Error; err != nil {
		return nil, translate("working-out", err)
	}
	return &w, nil
}

// LockWorkingOut takes SELECT ... FOR UPDATE on the working-out row. Two
// transitions on the same working-out queue behind each other here.
func (s *Applications) LockWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error) {
	var w workouts.WorkingOut
	err := s.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&w, id).Error
	if err != nil {
		return nil, translate("working-out", err)
	}
	return &w, nil
}

func (s *Applications) Create(ctx context.Context, app *applications.Application) error {
	return translate("application", s.conn(ctx).Omit(clause.Associations).Create(app).Error)
}

// UpdateStatus writes only the status column; the registered moment is never
// part of an update.
func (s *Applications) UpdateStatus(ctx context.Context, id uint, status applications.Status) error {
	res := s.conn(ctx).
		Model(&applications.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return translate("application", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("application", nil)
	}
	return nil
}

func (s *Applications) FindByID(ctx context.Context, id uint) (*applications.Application, error) {
	var app applications.Application
	if err := s.conn(ctx).First(&app, id).Error; err != nil {
		return nil, translate("application", err)
	}
	return &app, nil
}

func withStatus(q *gorm.DB, column string, status applications.Status) *gorm.DB {
	if status == "" {
		return q
	}
	return q.Where(column+" = ?", status)
}

func (s *Applications) list(q *gorm.DB, order string) ([]applications.Application, error) {
	var out []applications.Application
	if err := q.Order(order).Find(&out).Error; err != nil {
		return nil, translate("applications", err)
	}
	return out, nil
}

func (s *Applications) FindByWorkingOutAndStatus(ctx context.Context, workingOutID uint, status applications.Status) ([]applications.Application, error) {
	q := s.conn(ctx).Where("working_out_id = ?", workingOutID)
	return s.list(withStatus(q, "status", status), "id")
}

func (s *Applications) FindByWorkingOutAndCustomer(ctx context.Context, workingOutID, customerID uint) ([]applications.Application, error) {
	q := s.conn(ctx).Where("working_out_id = ? AND customer_id = ?", workingOutID, customerID)
	return s.list(q, "id")
}

func (s *Applications) FindByCustomerAndStatus(ctx context.Context, customerID uint, status applications.Status) ([]applications.Application, error) {
	q := s.conn(ctx).Where("customer_id = ?", customerID)
	return s.list(withStatus(q, "status", status), "id")
}

func (s *Applications) byTrainer(ctx context.Context, trainerID uint) *gorm.DB {
	return s.conn(ctx).
		Model(&applications.Application{}).
		Joins("JOIN working_outs ON working_outs.id = applications.working_out_id").
		Where("working_outs.trainer_id = ?", trainerID)
}

func (s *Applications) FindByTrainerAndStatus(ctx context.Context, trainerID uint, status applications.Status) ([]applications.Application, error) {
	q := withStatus(s.byTrainer(ctx, trainerID), "applications.status", status)
	return s.list(q, "applications.id")
}

func (s *Applications) ExistsAcceptedBetween(ctx context.Context, customerID, trainerID uint) (bool, error) {
	var n int64
	err := s.byTrainer(ctx, trainerID).
		Where("applications.customer_id = ? AND applications.status = ?", customerID, applications.StatusAccepted).
		Count(&n).Error
	if err != nil {
		return false, translate("applications", err)
	}
	return n > 0, nil
}

func (s *Applications) DeleteAllByCustomer(ctx context.Context, customerID uint) (int64, error) {
	res := s.conn(ctx).Where("customer_id = ?", customerID).Delete(&applications.Application{})
	return res.RowsAffected, translate("applications", res.Error)
}

func (s *Applications) DeleteAllByTrainer(ctx context.Context, trainerID uint) (int64, error) {
	owned := s.conn(ctx).Model(&workouts.WorkingOut{}).Select("id").Where("trainer_id = ?", trainerID)
	res := s.conn(ctx).Where("working_out_id IN (?)", owned).Delete(&applications.Application{})
	return res.RowsAffected, translate("applications", res.Error)
}
