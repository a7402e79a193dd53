package admission

import (
	"context"
	"errors"
	"sort"
	"sync"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/billing"
	"personal-trainer-app/internal/domain/workouts"
)

type inTxKey struct{}

// memRepo is an in-memory Repository. Transactions are serialized and rolled
// back by restoring a snapshot, which mirrors the row lock taken by the
// postgres store.
type memRepo struct {
	txMu sync.Mutex

	mu         sync.Mutex
	apps       map[uint]applications.Application
	workouts   map[uint]workouts.WorkingOut
	nextID     uint
	failUpdate map[uint]error
}

func newMemRepo() *memRepo {
	return &memRepo{
		apps:       make(map[uint]applications.Application),
		workouts:   make(map[uint]workouts.WorkingOut),
		failUpdate: make(map[uint]error),
	}
}

func (m *memRepo) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}

	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := make(map[uint]applications.Application, len(m.apps))
	for k, v := range m.apps {
		snapshot[k] = v
	}
	m.mu.Unlock()

	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		m.mu.Lock()
		m.apps = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memRepo) addWorkingOut(w workouts.WorkingOut) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workouts[w.ID] = w
}

func (m *memRepo) put(app applications.Application) applications.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	app.ID = m.nextID
	m.apps[app.ID] = app
	return app
}

func (m *memRepo) get(id uint) applications.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apps[id]
}

func (m *memRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.apps)
}

func (m *memRepo) FindWorkingOut(_ context.Context, id uint) (*workouts.WorkingOut, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.workouts[id]
	if !ok {
		return nil, apperr.NotFound("working-out", nil)
	}
	return &w, nil
}

func (m *memRepo) LockWorkingOut(ctx context.Context, id uint) (*workouts.WorkingOut, error) {
	if ctx.Value(inTxKey{}) == nil {
		return nil, errors.New("lock outside transaction")
	}
	return m.FindWorkingOut(ctx, id)
}

func (m *memRepo) Create(_ context.Context, app *applications.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.WorkingOutID == app.WorkingOutID && a.CustomerID == app.CustomerID {
			return apperr.ErrDuplicate
		}
	}
	m.nextID++
	app.ID = m.nextID
	m.apps[app.ID] = *app
	return nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id uint, status applications.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failUpdate[id]; err != nil {
		return err
	}
	app, ok := m.apps[id]
	if !ok {
		return apperr.NotFound("application", nil)
	}
	if status == applications.StatusAccepted {
		for _, a := range m.apps {
			if a.ID != id && a.WorkingOutID == app.WorkingOutID && a.Status == applications.StatusAccepted {
				return apperr.ErrDuplicate
			}
		}
	}
	app.Status = status
	m.apps[id] = app
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id uint) (*applications.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return nil, apperr.NotFound("application", nil)
	}
	return &app, nil
}

func (m *memRepo) filter(keep func(applications.Application) bool) []applications.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []applications.Application
	for _, a := range m.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func statusMatches(want, got applications.Status) bool {
	return want == "" || want == got
}

func (m *memRepo) trainerOf(workingOutID uint) uint {
	return m.workouts[workingOutID].TrainerID
}

func (m *memRepo) FindByWorkingOutAndStatus(_ context.Context, workingOutID uint, status applications.Status) ([]applications.Application, error) {
	return m.filter(func(a applications.Application) bool {
		return a.WorkingOutID == workingOutID && statusMatches(status, a.Status)
	}), nil
}

func (m *memRepo) FindByWorkingOutAndCustomer(_ context.Context, workingOutID, customerID uint) ([]applications.Application, error) {
	return m.filter(func(a applications.Application) bool {
		return a.WorkingOutID == workingOutID && a.CustomerID == customerID
	}), nil
}

func (m *memRepo) FindByCustomerAndStatus(_ context.Context, customerID uint, status applications.Status) ([]applications.Application, error) {
	return m.filter(func(a applications.Application) bool {
		return a.CustomerID == customerID && statusMatches(status, a.Status)
	}), nil
}

func (m *memRepo) FindByTrainerAndStatus(_ context.Context, trainerID uint, status applications.Status) ([]applications.Application, error) {
	return m.filter(func(a applications.Application) bool {
		return m.trainerOf(a.WorkingOutID) == trainerID && statusMatches(status, a.Status)
	}), nil
}

func (m *memRepo) ExistsAcceptedBetween(_ context.Context, customerID, trainerID uint) (bool, error) {
	found := m.filter(func(a applications.Application) bool {
		return a.CustomerID == customerID && a.Status == applications.StatusAccepted && m.trainerOf(a.WorkingOutID) == trainerID
	})
	return len(found) > 0, nil
}

func (m *memRepo) deleteWhere(match func(applications.Application) bool) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, a := range m.apps {
		if match(a) {
			delete(m.apps, id)
			n++
		}
	}
	return n
}

func (m *memRepo) DeleteAllByCustomer(_ context.Context, customerID uint) (int64, error) {
	return m.deleteWhere(func(a applications.Application) bool { return a.CustomerID == customerID }), nil
}

func (m *memRepo) DeleteAllByTrainer(_ context.Context, trainerID uint) (int64, error) {
	return m.deleteWhere(func(a applications.Application) bool { return m.trainerOf(a.WorkingOutID) == trainerID }), nil
}

type memCards map[uint][]billing.CreditCard

func (m memCards) ListCreditCards(_ context.Context, customerID uint) ([]billing.CreditCard, error) {
	return m[customerID], nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []applications.Application
	err  error
}

func (n *recordingNotifier) NotifyStatusChange(_ context.Context, app applications.Application) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, app)
	return nil
}

func (n *recordingNotifier) calls() []applications.Application {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]applications.Application(nil), n.sent...)
}

type memQueue struct {
	mu  sync.Mutex
	ids []uint
}

func (q *memQueue) Push(_ context.Context, id uint) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = append(q.ids, id)
	return nil
}
