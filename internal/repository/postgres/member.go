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
	insertMemberQuery = `
INSERT INTO members(id, workspace_id, slack_user_id, display_name, email, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, workspace_id, slack_user_id, display_name, email, is_active, created_at, updated_at`
	selectMemberQuery = `
SELECT id, workspace_id, slack_user_id, display_name, email, is_active, created_at, updated_at
FROM members WHERE id = $1`
	selectMemberBySlackIDQuery = `
SELECT id, workspace_id, slack_user_id, display_name, email, is_active, created_at, updated_at
FROM members WHERE slack_user_id = $1`
	listActiveMembersQuery = `
SELECT id, workspace_id, slack_user_id, display_name, email, is_active, created_at, updated_at
FROM members WHERE workspace_id = $1 AND is_active = true ORDER BY created_at`
	updateMemberQuery = `
UPDATE members
SET display_name = COALESCE($2, display_name),
    email        = COALESCE($3, email),
    is_active    = COALESCE($4, is_active),
    updated_at   = NOW()
WHERE id = $1
RETURNING id, workspace_id, slack_user_id, display_name, email, is_active, created_at, updated_at`
	deleteMemberQuery = `DELETE FROM members WHERE id = $1`
)

// CreateMember inserts a member row.
func (p *Postgres) CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error) {
	created, err := p.scanMember(p.db.QueryRow(ctx, insertMemberQuery,
		m.ID, m.WorkspaceID, m.SlackUserID, m.DisplayName, m.Email, m.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrMemberExists
		}
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrWorkspaceNotFound
		}
		return nil, err
	}

	p.log.Infow("member created", "member_id", created.ID, "slack_user_id", created.SlackUserID)
	return created, nil
}

// GetMember fetches a member by id.
func (p *Postgres) GetMember(ctx context.Context, id string) (*entities.Member, error) {
	return p.scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
}

// GetMemberBySlackUserID fetches a member by Slack user id.
func (p *Postgres) GetMemberBySlackUserID(ctx context.Context, slackUserID string) (*entities.Member, error) {
	return p.scanMember(p.db.QueryRow(ctx, selectMemberBySlackIDQuery, slackUserID))
}

// ListActiveMembers returns active members of a workspace.
func (p *Postgres) ListActiveMembers(ctx context.Context, workspaceID string) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, listActiveMembersQuery, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list active members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var m entities.Member
		if err := rows.Scan(&m.ID, &m.WorkspaceID, &m.SlackUserID, &m.DisplayName,
			&m.Email, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// UpdateMember applies the enumerated update and returns the updated member.
func (p *Postgres) UpdateMember(ctx context.Context, id string, update entities.MemberUpdate) (*entities.Member, error) {
	m, err := p.scanMember(p.db.QueryRow(ctx, updateMemberQuery,
		id, update.DisplayName, update.Email, update.IsActive))
	if err != nil {
		return nil, err
	}

	p.log.Infow("member updated", "member_id", id, "is_active", m.IsActive)
	return m, nil
}

// DeleteMember removes a member; reports and conversation state cascade.
func (p *Postgres) DeleteMember(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	p.log.Infow("member deleted", "member_id", id)
	return nil
}

func (p *Postgres) scanMember(row pgx.Row) (*entities.Member, error) {
	var m entities.Member
	err := row.Scan(&m.ID, &m.WorkspaceID, &m.SlackUserID, &m.DisplayName,
		&m.Email, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}
	return &m, nil
}
