package applications

import (
	"time"

	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/billing"
	"personal-trainer-app/internal/domain/workouts"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Application is a customer's request to join a working-out.
//
// Uniqueness of (working_out_id, customer_id) and of the accepted application
// per working-out is also enforced by indexes created in database.Migrate.
type Application struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Status           Status     `gorm:"type:varchar(10);not null;index" json:"status"`
	RegisteredMoment *time.Time `gorm:"column:registered_moment" json:"registered_moment"`
	Comments         string     `json:"comments,omitempty"`

	CustomerID uint          `gorm:"not null;index" json:"customer_id"`
	Customer   *actors.Actor `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreditCardID uint                `gorm:"not null" json:"credit_card_id"`
	CreditCard   *billing.CreditCard `gorm:"constraint:OnDelete:RESTRICT" json:"-"`

	WorkingOutID uint                 `gorm:"not null;index" json:"working_out_id"`
	WorkingOut   *workouts.WorkingOut `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	UpdatedAt time.Time `json:"updated_at"`
}
