// Package domain contains application Usecases orchestrating the standup core.
package domain

import (
	"context"
	"sync"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/repository"

	"go.uber.org/zap"
)

// Notifier is the outbound message transport contract.
type Notifier interface {
	Send(ctx context.Context, slackUserID, text string) error
}

// Schedules is the trigger registry contract.
type Schedules interface {
	Register(workspaceID, timeOfDay, timezone string) error
	Remove(workspaceID string)
}

// Defaults are the dispatch settings applied to newly created workspaces.
type Defaults struct {
	Time     string
	Timezone string
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	notifier  Notifier
	schedules Schedules
	defaults  Defaults
	timeout   time.Duration

	locks memberLocks
	now   func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notifier Notifier,
	schedules Schedules,
	defaults Defaults,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:       ctx,
		log:       log,
		repo:      repo,
		notifier:  notifier,
		schedules: schedules,
		defaults:  defaults,
		timeout:   timeout,
		locks:     memberLocks{locks: make(map[string]*sync.Mutex)},
		now:       time.Now,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// memberLocks serializes conversation transitions per member. Distinct
// members are fully independent and proceed in parallel.
type memberLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *memberLocks) lock(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
