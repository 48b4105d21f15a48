// Package domain contains application Usecases orchestrating domain logic by workspace.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/google/uuid"
)

// CreateWorkspace registers a Slack team, reusing an existing row for the
// same team id, and installs its dispatch trigger. Install credentials are
// recorded on the workspace row; re-installing refreshes them, since Slack
// may rotate the token on every install.
func (u *Usecase) CreateWorkspace(ctx context.Context, slackTeamID, reportChannelID, botToken, botUserID string) (*entities.Workspace, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if slackTeamID == "" {
		return nil, fmt.Errorf("%w: slack_team_id is required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetWorkspaceBySlackTeamID(ctx, slackTeamID)
	if err != nil && !errors.Is(err, entities.ErrWorkspaceNotFound) {
		return nil, err
	}
	if existing != nil {
		if botToken != "" && (existing.BotToken != botToken || existing.BotUserID != botUserID) {
			u.log.Infow("refreshing workspace credentials", "workspace_id", existing.ID, "slack_team_id", slackTeamID)
			return u.repo.UpdateWorkspaceCredentials(ctx, existing.ID, botToken, botUserID)
		}
		u.log.Infow("workspace already installed", "workspace_id", existing.ID, "slack_team_id", slackTeamID)
		return existing, nil
	}

	ws, err := u.repo.CreateWorkspace(ctx, entities.Workspace{
		ID:              uuid.NewString(),
		SlackTeamID:     slackTeamID,
		ReportChannelID: reportChannelID,
		DefaultTime:     u.defaults.Time,
		Timezone:        u.defaults.Timezone,
		BotToken:        botToken,
		BotUserID:       botUserID,
	})
	if err != nil {
		return nil, err
	}

	if err := u.schedules.Register(ws.ID, ws.DefaultTime, ws.Timezone); err != nil {
		u.log.Errorw("failed to register schedule for new workspace", "error", err, "workspace_id", ws.ID)
	}

	return ws, nil
}

// Workspace returns a workspace by id.
func (u *Usecase) Workspace(ctx context.Context, id string) (*entities.Workspace, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: workspace id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetWorkspace(ctx, id)
}

// Workspaces returns all workspaces.
func (u *Usecase) Workspaces(ctx context.Context) ([]entities.Workspace, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListWorkspaces(ctx)
}

// UpdateWorkspaceSettings applies enumerated settings and re-registers the
// trigger when the dispatch time or timezone changed. New values are
// validated here, before anything is persisted.
func (u *Usecase) UpdateWorkspaceSettings(ctx context.Context, id string, settings entities.WorkspaceSettings) (*entities.Workspace, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: workspace id is required", entities.ErrInvalidArgument)
	}
	if settings.Empty() {
		return nil, fmt.Errorf("%w: no settings to update", entities.ErrInvalidArgument)
	}
	if settings.DefaultTime != nil {
		if _, _, err := entities.ParseClock(*settings.DefaultTime); err != nil {
			return nil, err
		}
	}
	if settings.Timezone != nil {
		if _, err := entities.ValidateTimezone(*settings.Timezone); err != nil {
			return nil, err
		}
	}

	ws, err := u.repo.UpdateWorkspaceSettings(ctx, id, settings)
	if err != nil {
		return nil, err
	}

	if settings.Reschedules() {
		if err := u.schedules.Register(ws.ID, ws.DefaultTime, ws.Timezone); err != nil {
			return nil, err
		}
	}

	u.log.Infow("workspace settings applied", "workspace_id", id)
	return ws, nil
}

// DeleteWorkspace removes the trigger first, then the workspace row.
// Member rows, reports and in-flight conversation state cascade away, so a
// straggler answer lands on the no-conversation path.
func (u *Usecase) DeleteWorkspace(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: workspace id is required", entities.ErrInvalidArgument)
	}

	u.schedules.Remove(id)
	return u.repo.DeleteWorkspace(ctx, id)
}
