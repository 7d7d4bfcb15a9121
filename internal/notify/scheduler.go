// Package notify runs the best-effort dose-reminder sweep. It owns its cron
// instance and stops it deterministically at teardown; nothing hangs off
// process-global state.
package notify

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mediping-server/internal/schedule"
)

const sweepTimeout = 30 * time.Second

// Reminder is one dose that is due and still pending.
type Reminder struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	MedicationID string `json:"medicationId"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
}

// Source yields the reminders due at a given date and clock time.
type Source interface {
	DueAt(ctx context.Context, date, clock string) ([]Reminder, error)
}

// Sender delivers a reminder. Delivery is best-effort; a failed send is
// logged and dropped, never retried.
type Sender interface {
	Send(ctx context.Context, r Reminder) error
}

// LogSender writes reminders to the log. It stands in until a real push
// transport is wired behind the Sender interface.
type LogSender struct {
	Log *zap.Logger
}

func (s LogSender) Send(ctx context.Context, r Reminder) error {
	s.Log.Info("dose reminder due",
		zap.String("email", r.Email),
		zap.String("medication", r.Medication),
		zap.String("dosage", r.Dosage),
		zap.String("time", r.Time),
	)
	return nil
}

// Scheduler periodically sweeps for due doses and hands them to the sender.
type Scheduler struct {
	source Source
	sender Sender
	clock  schedule.Clock
	log    *zap.Logger
	cron   *cron.Cron
}

func NewScheduler(source Source, sender Sender, clock schedule.Clock, log *zap.Logger) *Scheduler {
	return &Scheduler{source: source, sender: sender, clock: clock, log: log}
}

// Start schedules the sweep on the given cron spec (standard five-field
// syntax, e.g. "0,30 * * * *" for every half hour).
func (s *Scheduler) Start(spec string) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("reminder scheduler started", zap.String("spec", spec))
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.log.Info("reminder scheduler stopped")
}

func (s *Scheduler) sweep() {
	now := s.clock.Now()
	date := now.Format(schedule.DateLayout)
	clock := now.Format(schedule.TimeLayout)

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	due, err := s.source.DueAt(ctx, date, clock)
	if err != nil {
		s.log.Error("reminder sweep failed", zap.Error(err))
		return
	}
	for _, r := range due {
		if err := s.sender.Send(ctx, r); err != nil {
			s.log.Warn("reminder send failed",
				zap.String("medicationId", r.MedicationID),
				zap.Error(err),
			)
		}
	}
}
