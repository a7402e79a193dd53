package messaging

import (
	"context"
	"fmt"

	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/domain/messages"
)

// NotifyStatusChange stores a NOTIFICATION in the customer's box and mails a
// copy when a mailer is configured. Only a failure to store the message is
// returned; the e-mail copy is best effort.
func (s *Service) NotifyStatusChange(ctx context.Context, app applications.Application) error {
	customer, err := s.directory.FindActor(ctx, app.CustomerID)
	if err != nil {
		return fmt.Errorf("load customer %d: %w", app.CustomerID, err)
	}

	title := fmt.Sprintf("#%d", app.WorkingOutID)
	if w, err := s.workouts.FindWorkingOut(ctx, app.WorkingOutID); err == nil {
		title = w.Title
	}

	subject, body := statusNotice(app, title)
	priority := messages.PriorityNeutral
	if app.Status == applications.StatusAccepted {
		priority = messages.PriorityHigh
	}

	msg := messages.Message{
		RecipientID: customer.ID,
		Kind:        messages.KindNotification,
		Subject:     subject,
		Body:        body,
		Priority:    priority,
		Tags:        "application",
		SentMoment:  s.now(),
	}
	if err := s.store.SaveMessages(ctx, []messages.Message{msg}); err != nil {
		return fmt.Errorf("store notification for application %d: %w", app.ID, err)
	}

	if s.mailer != nil && customer.Email != "" {
		if err := s.mailer.Send(ctx, customer.Email, subject, body); err != nil {
			s.log.WithError(err).WithField("application_id", app.ID).Warn("notification e-mail not sent")
		}
	}
	return nil
}

func statusNotice(app applications.Application, title string) (subject, body string) {
	switch app.Status {
	case applications.StatusAccepted:
		return "Application accepted",
			fmt.Sprintf("Your application #%d to %q has been accepted.", app.ID, title)
	case applications.StatusRejected:
		return "Application rejected",
			fmt.Sprintf("Your application #%d to %q has been rejected.", app.ID, title)
	default:
		return "Application updated",
			fmt.Sprintf("Your application #%d to %q is now %s.", app.ID, title, app.Status)
	}
}
