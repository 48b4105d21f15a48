package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertWorkspaceQuery = `
INSERT INTO workspaces(id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id, created_at, updated_at`
	selectWorkspaceQuery = `
SELECT id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id, created_at, updated_at
FROM workspaces WHERE id = $1`
	selectWorkspaceByTeamQuery = `
SELECT id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id, created_at, updated_at
FROM workspaces WHERE slack_team_id = $1`
	listWorkspacesQuery = `
SELECT id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id, created_at, updated_at
FROM workspaces ORDER BY created_at`
	updateWorkspaceSettingsQuery = `
UPDATE workspaces
SET default_time      = COALESCE($2, default_time),
    timezone          = COALESCE($3, timezone),
    report_channel_id = COALESCE($4, report_channel_id),
    updated_at        = NOW()
WHERE id = $1
RETURNING id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id, created_at, updated_at`
	updateWorkspaceCredentialsQuery = `
UPDATE workspaces
SET bot_token   = $2,
    bot_user_id = $3,
    updated_at  = NOW()
WHERE id = $1
RETURNING id, slack_team_id, report_channel_id, default_time, timezone, bot_token, bot_user_id, created_at, updated_at`
	deleteWorkspaceQuery = `DELETE FROM workspaces WHERE id = $1`
)

// CreateWorkspace inserts a workspace row.
func (p *Postgres) CreateWorkspace(ctx context.Context, ws entities.Workspace) (*entities.Workspace, error) {
	created, err := p.scanWorkspace(p.db.QueryRow(ctx, insertWorkspaceQuery,
		ws.ID, ws.SlackTeamID, ws.ReportChannelID, ws.DefaultTime, ws.Timezone, ws.BotToken, ws.BotUserID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrWorkspaceExists
		}
		return nil, err
	}

	p.log.Infow("workspace created", "workspace_id", created.ID, "slack_team_id", created.SlackTeamID)
	return created, nil
}

// GetWorkspace fetches a workspace by id.
func (p *Postgres) GetWorkspace(ctx context.Context, id string) (*entities.Workspace, error) {
	return p.scanWorkspace(p.db.QueryRow(ctx, selectWorkspaceQuery, id))
}

// GetWorkspaceBySlackTeamID fetches a workspace by its Slack team id.
func (p *Postgres) GetWorkspaceBySlackTeamID(ctx context.Context, slackTeamID string) (*entities.Workspace, error) {
	return p.scanWorkspace(p.db.QueryRow(ctx, selectWorkspaceByTeamQuery, slackTeamID))
}

// ListWorkspaces returns all workspaces.
func (p *Postgres) ListWorkspaces(ctx context.Context) ([]entities.Workspace, error) {
	rows, err := p.db.Query(ctx, listWorkspacesQuery)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	workspaces := make([]entities.Workspace, 0)
	for rows.Next() {
		var ws entities.Workspace
		if err := rows.Scan(&ws.ID, &ws.SlackTeamID, &ws.ReportChannelID,
			&ws.DefaultTime, &ws.Timezone, &ws.BotToken, &ws.BotUserID,
			&ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workspaces: %w", err)
	}

	return workspaces, nil
}

// UpdateWorkspaceSettings applies the enumerated settings and returns the updated workspace.
func (p *Postgres) UpdateWorkspaceSettings(ctx context.Context, id string, settings entities.WorkspaceSettings) (*entities.Workspace, error) {
	ws, err := p.scanWorkspace(p.db.QueryRow(ctx, updateWorkspaceSettingsQuery,
		id, settings.DefaultTime, settings.Timezone, settings.ReportChannelID))
	if err != nil {
		return nil, err
	}

	p.log.Infow("workspace settings updated", "workspace_id", id)
	return ws, nil
}

// UpdateWorkspaceCredentials replaces the stored install credentials,
// refreshing them when the app is re-installed into the same team.
func (p *Postgres) UpdateWorkspaceCredentials(ctx context.Context, id, botToken, botUserID string) (*entities.Workspace, error) {
	ws, err := p.scanWorkspace(p.db.QueryRow(ctx, updateWorkspaceCredentialsQuery, id, botToken, botUserID))
	if err != nil {
		return nil, err
	}

	p.log.Infow("workspace credentials updated", "workspace_id", id)
	return ws, nil
}

// DeleteWorkspace removes a workspace; members, reports and conversations cascade.
func (p *Postgres) DeleteWorkspace(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteWorkspaceQuery, id)
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrWorkspaceNotFound
	}

	p.log.Infow("workspace deleted", "workspace_id", id)
	return nil
}

func (p *Postgres) scanWorkspace(row pgx.Row) (*entities.Workspace, error) {
	var ws entities.Workspace
	err := row.Scan(&ws.ID, &ws.SlackTeamID, &ws.ReportChannelID,
		&ws.DefaultTime, &ws.Timezone, &ws.BotToken, &ws.BotUserID,
		&ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("scan workspace: %w", err)
	}
	return &ws, nil
}
