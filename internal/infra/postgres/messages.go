package postgres

import (
	"context"

	"personal-trainer-app/internal/domain/messages"
)

type Messages struct {
	*DB
}

func NewMessages(db *DB) *Messages {
	return &Messages{DB: db}
}

// SaveMessages inserts the rows in batches so a broadcast is a handful of
// statements whatever the number of actors.
func (s *Messages) SaveMessages(ctx context.Context, msgs []messages.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return translate("messages", s.conn(ctx).Omit("Sender", "Recipient").CreateInBatches(msgs, 200).Error)
}

func (s *Messages) ListBox(ctx context.Context, recipientID uint) ([]messages.Message, error) {
	var out []messages.Message
	err := s.conn(ctx).
		Where("recipient_id = ?", recipientID).
		Order("sent_moment DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, translate("messages", err)
	}
	return out, nil
}
