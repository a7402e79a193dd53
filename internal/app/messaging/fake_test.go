package messaging

import (
	"context"
	"errors"
	"sort"
	"sync"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/messages"
	"personal-trainer-app/internal/domain/workouts"
)

type memStore struct {
	mu   sync.Mutex
	msgs []messages.Message
	err  error
}

func (m *memStore) SaveMessages(_ context.Context, msgs []messages.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, msgs...)
	return nil
}

func (m *memStore) ListBox(_ context.Context, recipientID uint) ([]messages.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []messages.Message
	for _, msg := range m.msgs {
		if msg.RecipientID == recipientID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type memDirectory map[uint]actors.Actor

func (d memDirectory) FindActor(_ context.Context, id uint) (*actors.Actor, error) {
	a, ok := d[id]
	if !ok {
		return nil, apperr.NotFound("actor", nil)
	}
	return &a, nil
}

func (d memDirectory) ListActorIDs(context.Context) ([]uint, error) {
	ids := make([]uint, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type memWorkouts map[uint]workouts.WorkingOut

func (m memWorkouts) FindWorkingOut(_ context.Context, id uint) (*workouts.WorkingOut, error) {
	w, ok := m[id]
	if !ok {
		return nil, apperr.NotFound("working-out", nil)
	}
	return &w, nil
}

// pairs lists accepted (customer, trainer) pairs.
type pairs map[[2]uint]bool

func (p pairs) ExistsAcceptedBetween(_ context.Context, customerID, trainerID uint) (bool, error) {
	return p[[2]uint{customerID, trainerID}], nil
}

type sentMail struct{ to, subject, body string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

type memRetry struct {
	ids     []uint
	popErr  error
	pushErr error
}

func (q *memRetry) Push(_ context.Context, id uint) error {
	if q.pushErr != nil {
		return q.pushErr
	}
	q.ids = append(q.ids, id)
	return nil
}

func (q *memRetry) Pop(context.Context) (uint, bool, error) {
	if q.popErr != nil {
		return 0, false, q.popErr
	}
	if len(q.ids) == 0 {
		return 0, false, nil
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	return id, true, nil
}

type memApps map[uint]applications.Application

func (m memApps) Reload(_ context.Context, id uint) (*applications.Application, error) {
	a, ok := m[id]
	if !ok {
		return nil, apperr.NotFound("application", nil)
	}
	return &a, nil
}

type flakyNotifier struct {
	failFor map[uint]bool
	sent    []uint
}

func (f *flakyNotifier) NotifyStatusChange(_ context.Context, app applications.Application) error {
	if f.failFor[app.ID] {
		return errors.New("still down")
	}
	f.sent = append(f.sent, app.ID)
	return nil
}
