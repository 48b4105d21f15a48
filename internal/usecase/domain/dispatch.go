// Package domain contains application Usecases orchestrating domain logic by dispatch run.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"
)

// ReloadSchedules installs triggers for every stored workspace. A workspace
// with an unparsable time or unknown timezone is logged and skipped; the rest
// register, so startup completes with whatever subset is valid.
func (u *Usecase) ReloadSchedules(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	workspaces, err := u.repo.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("reload schedules: %w", err)
	}

	registered := 0
	for _, ws := range workspaces {
		if err := u.schedules.Register(ws.ID, ws.DefaultTime, ws.Timezone); err != nil {
			u.log.Errorw("skipping workspace with invalid schedule",
				"error", err, "workspace_id", ws.ID, "time", ws.DefaultTime, "timezone", ws.Timezone)
			continue
		}
		registered++
	}

	u.log.Infow("schedules reloaded", "workspaces", len(workspaces), "registered", registered)
	return nil
}

// DispatchWorkspace runs one scheduled outreach pass for a workspace: it
// computes "today" in the workspace's own timezone, then prompts every active
// member who has not completed or skipped that day. Re-running it for the
// same day never re-prompts a member who is already done.
//
// No withTimeout here: a dispatch run sends one message per member and is
// bounded by the caller's context, not by the per-request timeout.
func (u *Usecase) DispatchWorkspace(ctx context.Context, workspaceID string) error {
	if workspaceID == "" {
		return fmt.Errorf("%w: workspace id is required", entities.ErrInvalidArgument)
	}

	ws, err := u.repo.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}

	loc, err := entities.ValidateTimezone(ws.Timezone)
	if err != nil {
		return err
	}
	today := entities.DateOnly(u.now().In(loc))

	members, err := u.repo.ListActiveMembers(ctx, workspaceID)
	if err != nil {
		return err
	}

	prompted := 0
	for _, m := range members {
		sent, err := u.dispatchMember(ctx, m, today)
		if err != nil {
			u.log.Errorw("member dispatch failed", "error", err, "member_id", m.ID, "workspace_id", workspaceID)
			continue
		}
		if sent {
			prompted++
		}
	}

	u.log.Infow("dispatch run finished",
		"workspace_id", workspaceID, "date", today.Format("2006-01-02"),
		"members", len(members), "prompted", prompted)
	return nil
}

// dispatchMember prompts one member for today unless their report is already
// done. Returns whether a prompt was sent.
func (u *Usecase) dispatchMember(ctx context.Context, m entities.Member, today time.Time) (bool, error) {
	report, err := u.repo.GetReport(ctx, m.ID, today)
	if err != nil {
		return false, err
	}
	if report != nil && report.Done() {
		u.log.Debugw("member already reported", "member_id", m.ID, "skipped", report.Skipped)
		return false, nil
	}

	if err := u.repo.UpsertConversation(ctx, m.ID, today, 0); err != nil {
		return false, err
	}

	text := entities.OpeningMessage + "\n" + entities.Questions[0].Prompt
	if err := u.notifier.Send(ctx, m.SlackUserID, text); err != nil {
		return false, err
	}

	return true, nil
}
