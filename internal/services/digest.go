package services

import (
	"context"
	"fmt"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/logger"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type metricsSource interface {
	Metrics(ctx context.Context, now time.Time) (*matching.DashboardMetrics, error)
}

// Digest posts a summary of the dashboard figures to the message feed on a
// cron schedule.
type Digest struct {
	metrics  metricsSource
	messages messageCreator
	cron     *cron.Cron
	now      func() time.Time
}

func NewDigest(metrics metricsSource, messages messageCreator, schedule string) (*Digest, error) {
	d := &Digest{
		metrics:  metrics,
		messages: messages,
		cron:     cron.New(),
		now:      time.Now,
	}

	_, err := d.cron.AddFunc(schedule, d.run)
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	return d, nil
}

func (d *Digest) Start() {
	d.cron.Start()
	log.Infof("digest scheduled, next run at %v", d.cron.Entries()[0].Next)
}

func (d *Digest) Stop() {
	<-d.cron.Stop().Done()
}

func (d *Digest) run() {
	if _, err := d.RunOnce(context.Background()); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDigest).Errorf("Failed to post digest: %v", err)
	}
}

func (d *Digest) RunOnce(ctx context.Context) (*entities.Message, error) {
	figures, err := d.metrics.Metrics(ctx, d.now())
	if err != nil {
		return nil, err
	}

	messageType := entities.MessageInfo
	if figures.UrgentCandidates > 0 {
		messageType = entities.MessageWarning
	}

	message, err := d.messages.Create(ctx, entities.NewMessage(
		"Daily Digest",
		fmt.Sprintf("%d urgent candidates, %d upcoming interviews, %d pending presentations",
			figures.UrgentCandidates, figures.UpcomingInterviews, figures.PendingPresentations),
		messageType,
		&entities.MessageLink{Text: "Open Dashboard", Url: "/"},
	))
	if err != nil {
		return nil, err
	}

	log.Infof("digest posted: %s", message.Content)
	return message, nil
}
