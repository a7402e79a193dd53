package messaging

import (
	"context"
	"errors"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/applications"
	"personal-trainer-app/internal/infra/logging"
	"personal-trainer-app/internal/infra/metrics"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type RetrySource interface {
	Push(ctx context.Context, applicationID uint) error
	Pop(ctx context.Context) (uint, bool, error)
}

type ApplicationLoader interface {
	Reload(ctx context.Context, applicationID uint) (*applications.Application, error)
}

type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, app applications.Application) error
}

const defaultRetryBatch = 50

// RetryJob redelivers status notifications that failed during a request. It
// reloads the application so the notice reflects the current status.
type RetryJob struct {
	queue    RetrySource
	apps     ApplicationLoader
	notifier StatusNotifier
	log      logrus.FieldLogger
	batch    int
}

func NewRetryJob(queue RetrySource, apps ApplicationLoader, notifier StatusNotifier, log logrus.FieldLogger) *RetryJob {
	if log == nil {
		log = logging.Discard()
	}
	return &RetryJob{queue: queue, apps: apps, notifier: notifier, log: log, batch: defaultRetryBatch}
}

// Schedule registers the job on c. spec uses the robfig/cron syntax, e.g.
// "@every 1m".
func (j *RetryJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddJob(spec, j)
}

// Run implements cron.Job.
func (j *RetryJob) Run() {
	n, err := j.Drain(context.Background())
	if err != nil {
		j.log.WithError(err).WithField("delivered", n).Warn("notification retry stopped early")
		return
	}
	if n > 0 {
		j.log.WithField("delivered", n).Info("queued notifications delivered")
	}
}

// Drain delivers up to one batch of queued notifications. It stops at the
// first delivery failure and puts that id back at the tail of the queue.
// Applications removed since the failure are dropped.
func (j *RetryJob) Drain(ctx context.Context) (int, error) {
	delivered := 0
	for i := 0; i < j.batch; i++ {
		id, ok, err := j.queue.Pop(ctx)
		if err != nil {
			return delivered, err
		}
		if !ok {
			return delivered, nil
		}

		app, err := j.apps.Reload(ctx, id)
		if errors.Is(err, apperr.ErrNotFound) {
			metrics.NotificationRetried("dropped")
			continue
		}
		if err == nil {
			err = j.notifier.NotifyStatusChange(ctx, *app)
		}
		if err != nil {
			metrics.NotificationRetried("failed")
			if perr := j.queue.Push(ctx, id); perr != nil {
				j.log.WithError(perr).WithField("application_id", id).Error("status notification lost")
			}
			return delivered, err
		}

		metrics.NotificationRetried("delivered")
		delivered++
	}
	return delivered, nil
}
