// Package scheduler owns the per-workspace dispatch triggers.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DispatchFunc is the job body invoked when a workspace trigger fires.
type DispatchFunc func(workspaceID string)

// Registry keeps one recurring cron entry per workspace. Entries fire at the
// workspace's wall-clock time on workdays, evaluated in its own timezone, so
// they track local time across DST transitions.
type Registry struct {
	log      *zap.SugaredLogger
	cron     *cron.Cron
	dispatch DispatchFunc

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New constructs a registry. Every job runs under Recover and
// SkipIfStillRunning: a workspace whose previous run is still in flight when
// the next tick arrives skips that tick instead of stacking runs.
func New(log *zap.SugaredLogger, dispatch DispatchFunc) *Registry {
	cronLog := &zapCronLogger{log: log.Named("cron")}
	return &Registry{
		log:      log.Named("scheduler"),
		cron:     cron.New(cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog))),
		dispatch: dispatch,
		entries:  make(map[string]cron.EntryID),
	}
}

// BuildSpec renders the cron expression for a workday trigger at the given
// wall-clock time in the given zone. Inputs are validated here, at
// registration time, never at fire time.
func BuildSpec(timeOfDay, timezone string) (string, error) {
	hour, minute, err := entities.ParseClock(timeOfDay)
	if err != nil {
		return "", err
	}
	if _, err := entities.ValidateTimezone(timezone); err != nil {
		return "", err
	}
	return fmt.Sprintf("CRON_TZ=%s %d %d * * MON-FRI", timezone, minute, hour), nil
}

// Register installs or replaces the trigger for a workspace. Re-registering
// the same workspace is idempotent and safe on every startup reload.
func (r *Registry) Register(workspaceID, timeOfDay, timezone string) error {
	spec, err := BuildSpec(timeOfDay, timezone)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.entries[workspaceID]; ok {
		r.cron.Remove(old)
	}

	id, err := r.cron.AddFunc(spec, func() { r.dispatch(workspaceID) })
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidSchedule, err)
	}
	r.entries[workspaceID] = id

	r.log.Infow("schedule registered", "workspace_id", workspaceID, "time", timeOfDay, "timezone", timezone)
	return nil
}

// Remove uninstalls a workspace's trigger. Removing an unknown workspace is a no-op.
func (r *Registry) Remove(workspaceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.entries[workspaceID]
	if !ok {
		return
	}
	r.cron.Remove(id)
	delete(r.entries, workspaceID)

	r.log.Infow("schedule removed", "workspace_id", workspaceID)
}

// Len returns the number of installed triggers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Start begins firing triggers.
func (r *Registry) Start() {
	r.cron.Start()
	r.log.Infow("scheduler started", "workspaces", r.Len())
}

// Stop halts the trigger loop and waits for in-flight jobs, up to ctx.
func (r *Registry) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		r.log.Warnw("scheduler stop timed out with jobs in flight")
		return ctx.Err()
	}
}

// zapCronLogger adapts the sugared logger to cron.Logger.
type zapCronLogger struct {
	log *zap.SugaredLogger
}

func (l *zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l *zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
