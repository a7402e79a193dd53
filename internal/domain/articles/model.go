package articles

import (
	"time"

	"personal-trainer-app/internal/domain/actors"
)

// Article is written by a nutritionist. Drafts are visible only to their author
// and become immutable once published.
type Article struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Summary         string     `json:"summary"`
	Body            string     `gorm:"type:text;not null" json:"body"`
	Pictures        string     `json:"pictures,omitempty"`
	IsFinalMode     bool       `gorm:"not null;default:false;index" json:"is_final_mode"`
	PublishedMoment *time.Time `json:"published_moment,omitempty"`

	NutritionistID uint          `gorm:"not null;index" json:"nutritionist_id"`
	Nutritionist   *actors.Actor `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisibleTo reports whether viewerID may read the article.
func (a Article) VisibleTo(viewerID uint) bool {
	return a.IsFinalMode || (viewerID != 0 && a.NutritionistID == viewerID)
}
