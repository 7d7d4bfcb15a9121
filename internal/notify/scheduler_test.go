package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type fakeSource struct {
	gotDate  string
	gotClock string
	due      []Reminder
	err      error
}

func (s *fakeSource) DueAt(ctx context.Context, date, clock string) ([]Reminder, error) {
	s.gotDate, s.gotClock = date, clock
	return s.due, s.err
}

type fakeSender struct {
	sent []Reminder
	err  error
}

func (s *fakeSender) Send(ctx context.Context, r Reminder) error {
	s.sent = append(s.sent, r)
	return s.err
}

func TestSweepSendsDueReminders(t *testing.T) {
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	src := &fakeSource{due: []Reminder{
		{Email: "a@example.com", Medication: "Ibuprofen", Time: "08:00"},
		{Email: "b@example.com", Medication: "Vitamin D", Time: "08:00"},
	}}
	snd := &fakeSender{}

	s := NewScheduler(src, snd, fixedClock{at}, zap.NewNop())
	s.sweep()

	if src.gotDate != "2024-06-01" || src.gotClock != "08:00" {
		t.Errorf("source queried with (%s, %s), want (2024-06-01, 08:00)", src.gotDate, src.gotClock)
	}
	if len(snd.sent) != 2 {
		t.Fatalf("sent %d reminders, want 2", len(snd.sent))
	}
	if snd.sent[0].Medication != "Ibuprofen" {
		t.Errorf("first reminder = %+v", snd.sent[0])
	}
}

func TestSweepSourceErrorSendsNothing(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	snd := &fakeSender{}

	s := NewScheduler(src, snd, fixedClock{time.Now()}, zap.NewNop())
	s.sweep()

	if len(snd.sent) != 0 {
		t.Errorf("sent %d reminders after source error, want 0", len(snd.sent))
	}
}

func TestSweepSendFailureKeepsGoing(t *testing.T) {
	src := &fakeSource{due: []Reminder{{Time: "08:00"}, {Time: "20:00"}}}
	snd := &fakeSender{err: errors.New("unreachable")}

	s := NewScheduler(src, snd, fixedClock{time.Now()}, zap.NewNop())
	s.sweep()

	if len(snd.sent) != 2 {
		t.Errorf("a failed send should not stop the sweep: sent %d, want 2", len(snd.sent))
	}
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(&fakeSource{}, &fakeSender{}, fixedClock{time.Now()}, zap.NewNop())
	if err := s.Start("0,30 * * * *"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
	// Stop without Start must not panic.
	NewScheduler(&fakeSource{}, &fakeSender{}, fixedClock{time.Now()}, zap.NewNop()).Stop()
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := NewScheduler(&fakeSource{}, &fakeSender{}, fixedClock{time.Now()}, zap.NewNop())
	if err := s.Start("not a cron spec"); err == nil {
		t.Fatal("expected error for malformed cron spec")
	}
}
