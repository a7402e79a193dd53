package postgres

import (
	"context"

	"personal-trainer-app/internal/domain/actors"
)

type Actors struct {
	*DB
}

func NewActors(db *DB) *Actors {
	return &Actors{DB: db}
}

func (s *Actors) FindActor(ctx context.Context, id uint) (*actors.Actor, error) {
	return s.findActor(ctx, id)
}

func (d *DB) findActor(ctx context.Context, id uint) (*actors.Actor, error) {
	var a actors.Actor
	if err := d.conn(ctx).First(&a, id).Error; err != nil {
		return nil, translate("actor", err)
	}
	return &a, nil
}

// ListActorIDs returns the id of every actor, ascending.
func (s *Actors) ListActorIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := s.conn(ctx).Model(&actors.Actor{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, translate("actors", err)
	}
	return ids, nil
}
