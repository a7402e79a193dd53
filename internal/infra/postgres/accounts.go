package postgres

import (
	"context"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/articles"
	"personal-trainer-app/internal/domain/billing"
	"personal-trainer-app/internal/domain/education"
	"personal-trainer-app/internal/domain/messages"
	"personal-trainer-app/internal/domain/workouts"
)

// Accounts deletes what an actor owns when the account is removed.
type Accounts struct {
	*DB
}

func NewAccounts(db *DB) *Accounts {
	return &Accounts{DB: db}
}

func (s *Accounts) deleteWhere(ctx context.Context, what string, model any, cond string, id uint) (int64, error) {
	res := s.conn(ctx).Where(cond, id).Delete(model)
	return res.RowsAffected, translate(what, res.Error)
}

func (s *Accounts) DeleteCreditCardsByCustomer(ctx context.Context, customerID uint) (int64, error) {
	return s.deleteWhere(ctx, "credit cards", &billing.CreditCard{}, "customer_id = ?", customerID)
}

func (s *Accounts) DeleteWorkingOutsByTrainer(ctx context.Context, trainerID uint) (int64, error) {
	return s.deleteWhere(ctx, "working-outs", &workouts.WorkingOut{}, "trainer_id = ?", trainerID)
}

func (s *Accounts) DeleteEducationRecordsByTrainer(ctx context.Context, trainerID uint) (int64, error) {
	return s.deleteWhere(ctx, "education records", &education.Record{}, "trainer_id = ?", trainerID)
}

func (s *Accounts) DeleteArticlesByNutritionist(ctx context.Context, nutritionistID uint) (int64, error) {
	return s.deleteWhere(ctx, "articles", &articles.Article{}, "nutritionist_id = ?", nutritionistID)
}

// DeleteMessagesOf empties the actor's box. Messages it sent to others stay,
// with the sender cleared by the foreign key.
func (s *Accounts) DeleteMessagesOf(ctx context.Context, recipientID uint) (int64, error) {
	return s.deleteWhere(ctx, "messages", &messages.Message{}, "recipient_id = ?", recipientID)
}

func (s *Accounts) DeleteActor(ctx context.Context, id uint) error {
	n, err := s.deleteWhere(ctx, "actor", &actors.Actor{}, "id = ?", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("actor", nil)
	}
	return nil
}
