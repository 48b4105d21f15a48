package usecase

import (
	"context"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"
)

// WorkspaceUsecaseInterface abstracts workspace-related operations for delivery layer.
type WorkspaceUsecaseInterface interface {
	CreateWorkspace(ctx context.Context, slackTeamID, reportChannelID, botToken, botUserID string) (*entities.Workspace, error)
	Workspace(ctx context.Context, id string) (*entities.Workspace, error)
	Workspaces(ctx context.Context) ([]entities.Workspace, error)
	UpdateWorkspaceSettings(ctx context.Context, id string, settings entities.WorkspaceSettings) (*entities.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string) error
}

// MemberUsecaseInterface abstracts member-related operations.
type MemberUsecaseInterface interface {
	CreateMember(ctx context.Context, workspaceID, slackUserID, displayName string, email *string) (*entities.Member, error)
	Member(ctx context.Context, id string) (*entities.Member, error)
	Members(ctx context.Context, workspaceID string) ([]entities.Member, error)
	UpdateMember(ctx context.Context, id string, update entities.MemberUpdate) (*entities.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

// StandupUsecaseInterface abstracts the scheduling and conversation core.
type StandupUsecaseInterface interface {
	ReloadSchedules(ctx context.Context) error
	DispatchWorkspace(ctx context.Context, workspaceID string) error
	HandleAnswer(ctx context.Context, slackUserID, text string) error
}
