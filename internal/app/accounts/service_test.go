package accounts

import (
	"context"
	"errors"
	"testing"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"

	"github.com/stretchr/testify/require"
)

// fakeStore records deletions and drops them when the transaction fails.
type fakeStore struct {
	committed []string
	pending   []string
	failOn    string
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.pending = nil
	if err := fn(ctx); err != nil {
		f.pending = nil
		return err
	}
	f.committed = append(f.committed, f.pending...)
	return nil
}

func (f *fakeStore) step(name string, n int64) (int64, error) {
	if f.failOn == name {
		return 0, errors.New(name + " failed")
	}
	f.pending = append(f.pending, name)
	return n, nil
}

func (f *fakeStore) DeleteCreditCardsByCustomer(context.Context, uint) (int64, error) {
	return f.step("cards", 2)
}

func (f *fakeStore) DeleteWorkingOutsByTrainer(context.Context, uint) (int64, error) {
	return f.step("working-outs", 3)
}

func (f *fakeStore) DeleteEducationRecordsByTrainer(context.Context, uint) (int64, error) {
	return f.step("education", 1)
}

func (f *fakeStore) DeleteArticlesByNutritionist(context.Context, uint) (int64, error) {
	return f.step("articles", 4)
}

func (f *fakeStore) DeleteMessagesOf(context.Context, uint) (int64, error) {
	return f.step("messages", 5)
}

func (f *fakeStore) DeleteActor(context.Context, uint) error {
	_, err := f.step("actor", 1)
	return err
}

type fakePurger struct {
	store *fakeStore
}

func (p fakePurger) PurgeCustomer(context.Context, actors.Customer) (int64, error) {
	return p.store.step("customer-applications", 6)
}

func (p fakePurger) PurgeTrainer(context.Context, actors.Trainer) (int64, error) {
	return p.store.step("trainer-applications", 7)
}

func newService() (*Service, *fakeStore) {
	store := &fakeStore{}
	return NewService(store, fakePurger{store: store}, nil), store
}

func TestRemoveCustomer(t *testing.T) {
	svc, store := newService()

	r, err := svc.Remove(context.Background(), actors.Actor{ID: 1, Role: actors.RoleCustomer})
	require.NoError(t, err)
	require.Equal(t, Removed{Applications: 6, CreditCards: 2, Messages: 5}, r)
	require.Equal(t, []string{"customer-applications", "cards", "messages", "actor"}, store.committed)
}

func TestRemoveTrainer(t *testing.T) {
	svc, store := newService()

	r, err := svc.Remove(context.Background(), actors.Actor{ID: 2, Role: actors.RoleTrainer})
	require.NoError(t, err)
	require.EqualValues(t, 7, r.Applications)
	require.EqualValues(t, 3, r.WorkingOuts)
	require.Equal(t, []string{"trainer-applications", "working-outs", "education", "messages", "actor"}, store.committed)
}

func TestRemoveNutritionist(t *testing.T) {
	svc, store := newService()

	r, err := svc.Remove(context.Background(), actors.Actor{ID: 3, Role: actors.RoleNutritionist})
	require.NoError(t, err)
	require.EqualValues(t, 4, r.Articles)
	require.Equal(t, []string{"articles", "messages", "actor"}, store.committed)
}

func TestRemoveRollsBack(t *testing.T) {
	svc, store := newService()
	store.failOn = "actor"

	_, err := svc.Remove(context.Background(), actors.Actor{ID: 2, Role: actors.RoleTrainer})
	require.Error(t, err)
	require.Empty(t, store.committed)
}

func TestRemoveRejectsAdministrators(t *testing.T) {
	svc, store := newService()

	_, err := svc.Remove(context.Background(), actors.Actor{ID: 9, Role: actors.RoleAdministrator})
	require.ErrorIs(t, err, apperr.ErrAuthorization)
	require.Empty(t, store.committed)
}
