package education

import (
	"strconv"
	"time"

	"personal-trainer-app/internal/domain/actors"
)

// Record is one entry of a trainer's curriculum.
type Record struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Institution string     `gorm:"not null" json:"institution"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Attachment  string     `json:"attachment,omitempty"`
	Comments    string     `json:"comments,omitempty"`

	TrainerID uint          `gorm:"not null;index" json:"trainer_id"`
	Trainer   *actors.Actor `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Record) TableName() string { return "education_records" }

// Key is the form value used to reference a record.
func (r *Record) Key() string {
	if r == nil {
		return ""
	}
	return strconv.FormatUint(uint64(r.ID), 10)
}

// ParseKey converts a form value back to a record id; empty input yields 0.
func ParseKey(s string) (uint, error) {
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Ongoing reports whether the record has no end date yet.
func (r Record) Ongoing() bool { return r.EndDate == nil }
