// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// WorkspaceInterface exposes workspace-related operations.
type WorkspaceInterface interface {
	CreateWorkspace(ctx context.Context, ws entities.Workspace) (*entities.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*entities.Workspace, error)
	GetWorkspaceBySlackTeamID(ctx context.Context, slackTeamID string) (*entities.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]entities.Workspace, error)
	UpdateWorkspaceSettings(ctx context.Context, id string, settings entities.WorkspaceSettings) (*entities.Workspace, error)
	UpdateWorkspaceCredentials(ctx context.Context, id, botToken, botUserID string) (*entities.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string) error
}

// MemberInterface exposes member-related operations.
type MemberInterface interface {
	CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error)
	GetMember(ctx context.Context, id string) (*entities.Member, error)
	GetMemberBySlackUserID(ctx context.Context, slackUserID string) (*entities.Member, error)
	ListActiveMembers(ctx context.Context, workspaceID string) ([]entities.Member, error)
	UpdateMember(ctx context.Context, id string, update entities.MemberUpdate) (*entities.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

// ReportInterface exposes standup report operations.
type ReportInterface interface {
	GetReport(ctx context.Context, memberID string, date time.Time) (*entities.Report, error)
	SaveReportAnswer(ctx context.Context, memberID string, date time.Time, field entities.ReportField, answer string) error
	MarkReportSkipped(ctx context.Context, memberID string, date time.Time) error
	CompleteReport(ctx context.Context, memberID string, date time.Time, completedAt time.Time) error
}

// ConversationInterface exposes conversation state operations.
type ConversationInterface interface {
	GetConversation(ctx context.Context, memberID string) (*entities.Conversation, error)
	UpsertConversation(ctx context.Context, memberID string, pendingDate time.Time, questionIndex int) error
	DeleteConversation(ctx context.Context, memberID string) error
}
