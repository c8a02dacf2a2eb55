// Package notify produces the scheduled reminders that queue new quiz
// days and surface them in the UI.
package notify

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mrenard/pointage/internal/model"
	"github.com/mrenard/pointage/internal/queue"
)

// tickInterval is how often the scheduler checks the clock.
const tickInterval = 30 * time.Second

// QuizzQueuedMsg is a tea.Msg sent when the scheduler queues a new
// day.
type QuizzQueuedMsg struct {
	Notification model.Notification
}

// Policy is the process-wide notification display policy. It is
// injected once at startup; there is no global registration.
type Policy struct {
	ShowAlert bool
	PlaySound bool
	ShowBadge bool
}

// PolicyFromConfig builds the display policy from configuration.
func PolicyFromConfig(cfg model.NotifyConfig) Policy {
	return Policy{
		ShowAlert: cfg.ShowAlert,
		PlaySound: cfg.PlaySound,
		ShowBadge: cfg.ShowBadge,
	}
}

// Scheduler fires at the configured reminder times and enqueues the
// current day. Results reach the UI through the notification channel
// as tea messages.
type Scheduler struct {
	queue        *queue.Queue
	times        []string
	weekdaysOnly bool
	policy       Policy

	notifyCh chan model.Notification
	stopCh   chan struct{}
	mu       sync.Mutex
	running  bool

	// fired remembers which (day, time) pairs already triggered, so a
	// tick landing twice in the same minute enqueues once.
	fired map[string]bool

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Scheduler over the queue with the given reminder
// configuration and display policy.
func New(q *queue.Queue, cfg model.ReminderConfig, policy Policy) *Scheduler {
	return &Scheduler{
		queue:        q,
		times:        cfg.Times,
		weekdaysOnly: cfg.WeekdaysOnly,
		policy:       policy,
		notifyCh:     make(chan model.Notification, 16),
		stopCh:       make(chan struct{}),
		fired:        make(map[string]bool),
		now:          time.Now,
	}
}

// Policy returns the injected display policy.
func (s *Scheduler) Policy() Policy {
	return s.policy
}

// Start launches the clock goroutine and returns a subscription
// command listening for queued days.
func (s *Scheduler) Start() tea.Cmd {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	go s.loop()
	return s.waitForNotification()
}

// Stop halts the clock goroutine.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stopCh)
	s.running = false
}

// WaitForNext returns a command waiting for the next queued day. Call
// it after processing a QuizzQueuedMsg to keep listening.
func (s *Scheduler) WaitForNext() tea.Cmd {
	return s.waitForNotification()
}

func (s *Scheduler) waitForNotification() tea.Cmd {
	return func() tea.Msg {
		n, ok := <-s.notifyCh
		if !ok {
			return nil
		}
		return QuizzQueuedMsg{Notification: n}
	}
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	s.Check()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.Check()
		}
	}
}

// Check fires every reminder whose time has passed today and was not
// fired yet. It is called by the clock loop and usable directly in
// tests.
func (s *Scheduler) Check() {
	now := s.now()
	if s.weekdaysOnly {
		if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return
		}
	}

	day := model.FromDate(now)
	for _, at := range s.times {
		due, err := time.ParseInLocation("15:04", at, time.Local)
		if err != nil {
			continue
		}
		dueToday := time.Date(now.Year(), now.Month(), now.Day(),
			due.Hour(), due.Minute(), 0, 0, time.Local)
		if now.Before(dueToday) {
			continue
		}

		key := day.String() + "@" + at
		s.mu.Lock()
		seen := s.fired[key]
		s.mu.Unlock()
		if seen {
			continue
		}

		if s.trigger(day) {
			s.mu.Lock()
			s.fired[key] = true
			s.mu.Unlock()
		}
	}
}

// trigger queues the day and emits its notification. It reports
// whether the day was queued, so a failed write is re-attempted on the
// next check.
func (s *Scheduler) trigger(day model.QuizzDate) bool {
	if err := s.queue.Add(day); err != nil {
		return false
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Day:       day,
		Message:   fmt.Sprintf("Pointage à remplir pour le %s", day),
		CreatedAt: s.now(),
	}

	select {
	case s.notifyCh <- n:
	default:
		// Drop if the channel is full to avoid blocking the clock.
	}
	return true
}
