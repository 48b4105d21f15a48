// Package domain contains application Usecases orchestrating domain logic by member.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/google/uuid"
)

// CreateMember enrolls a Slack user into a workspace. An existing inactive
// member with the same Slack user id is reactivated instead of duplicated.
func (u *Usecase) CreateMember(ctx context.Context, workspaceID, slackUserID, displayName string, email *string) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if workspaceID == "" || slackUserID == "" || displayName == "" {
		return nil, fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetMemberBySlackUserID(ctx, slackUserID)
	if err != nil && !errors.Is(err, entities.ErrMemberNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return nil, entities.ErrMemberExists
		}
		active := true
		u.log.Infow("reactivating member", "member_id", existing.ID, "slack_user_id", slackUserID)
		return u.repo.UpdateMember(ctx, existing.ID, entities.MemberUpdate{IsActive: &active})
	}

	m, err := u.repo.CreateMember(ctx, entities.Member{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		SlackUserID: slackUserID,
		DisplayName: displayName,
		Email:       email,
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("member enrolled", "member_id", m.ID, "workspace_id", workspaceID)
	return m, nil
}

// Member returns a member by id.
func (u *Usecase) Member(ctx context.Context, id string) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetMember(ctx, id)
}

// Members returns the active members of a workspace.
func (u *Usecase) Members(ctx context.Context, workspaceID string) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if workspaceID == "" {
		return nil, fmt.Errorf("%w: workspace id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListActiveMembers(ctx, workspaceID)
}

// UpdateMember applies an enumerated update. Deactivation abandons any
// in-flight conversation; a partially filled report stays as-is.
func (u *Usecase) UpdateMember(ctx context.Context, id string, update entities.MemberUpdate) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	if update.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", entities.ErrInvalidArgument)
	}

	m, err := u.repo.UpdateMember(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if update.Deactivates() {
		if err := u.repo.DeleteConversation(ctx, m.ID); err != nil {
			return nil, err
		}
		u.log.Infow("conversation abandoned on deactivation", "member_id", m.ID)
	}

	return m, nil
}

// DeleteMember removes a member; reports and conversation state cascade in storage.
func (u *Usecase) DeleteMember(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteMember(ctx, id)
}
