// Package api defines the transport DTOs of the HTTP surface.
package api

import "time"

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

const (
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// INVALIDARGUMENT marks failed request validation.
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	// WORKSPACEEXISTS marks a slack team id conflict.
	WORKSPACEEXISTS ErrorCode = "WORKSPACE_EXISTS"
	// MEMBEREXISTS marks a slack user id conflict.
	MEMBEREXISTS ErrorCode = "MEMBER_EXISTS"
	// BADSCHEDULE marks an unparsable time or unknown timezone.
	BADSCHEDULE ErrorCode = "BAD_SCHEDULE"
	// INTERNAL marks an unclassified failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code/message pair.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Workspace is the transport model of a tenant.
type Workspace struct {
	ID              string    `json:"id"`
	SlackTeamID     string    `json:"slack_team_id"`
	ReportChannelID string    `json:"report_channel_id"`
	DefaultTime     string    `json:"default_time"`
	Timezone        string    `json:"timezone"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Member is the transport model of a workspace participant.
type Member struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	SlackUserID string    `json:"slack_user_id"`
	DisplayName string    `json:"display_name"`
	Email       *string   `json:"email,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateWorkspaceRequest is the body of POST /admin/workspaces.
type CreateWorkspaceRequest struct {
	SlackTeamID     string `json:"slack_team_id"`
	ReportChannelID string `json:"report_channel_id"`
}

// UpdateWorkspaceSettingsRequest is the body of PATCH /admin/workspaces/:id.
// Absent fields are left unchanged.
type UpdateWorkspaceSettingsRequest struct {
	DefaultTime     *string `json:"default_time,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	ReportChannelID *string `json:"report_channel_id,omitempty"`
}

// CreateMemberRequest is the body of POST /admin/members.
type CreateMemberRequest struct {
	WorkspaceID string  `json:"workspace_id"`
	SlackUserID string  `json:"slack_user_id"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email,omitempty"`
}

// UpdateMemberRequest is the body of PATCH /admin/members/:id.
// Absent fields are left unchanged.
type UpdateMemberRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
