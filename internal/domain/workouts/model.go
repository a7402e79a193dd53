package workouts

import (
	"time"

	"personal-trainer-app/internal/domain/actors"
)

// WorkingOut is a session a trainer publishes for customers to apply to.
type WorkingOut struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Ticker      string  `gorm:"not null;uniqueIndex:idx_working_outs_ticker" json:"ticker"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	IsFinalMode bool    `gorm:"not null;default:false" json:"is_final_mode"`

	StartMoment time.Time `gorm:"not null" json:"start_moment"`
	EndMoment   time.Time `gorm:"not null" json:"end_moment"`

	TrainerID uint          `gorm:"not null;index" json:"trainer_id"`
	Trainer   *actors.Actor `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
