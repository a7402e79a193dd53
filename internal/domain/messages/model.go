package messages

import (
	"time"

	"personal-trainer-app/internal/domain/actors"
)

const (
	KindDirect       = "DIRECT"
	KindBroadcast    = "BROADCAST"
	KindNotification = "NOTIFICATION"
	KindBreach       = "BREACH"
)

// Message is one copy of a message in a recipient's box. A broadcast is
// stored as one row per recipient. A nil SenderID marks a system message.
type Message struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	SenderID    *uint         `gorm:"index" json:"sender_id"`
	Sender      *actors.Actor `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	RecipientID uint          `gorm:"not null;index" json:"recipient_id"`
	Recipient   *actors.Actor `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Kind       string    `gorm:"type:varchar(16);not null;index" json:"kind"`
	Subject    string    `gorm:"not null" json:"subject"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Priority   string    `gorm:"type:varchar(16);not null" json:"priority"`
	Tags       string    `json:"tags,omitempty"`
	SentMoment time.Time `gorm:"not null" json:"sent_moment"`
}
