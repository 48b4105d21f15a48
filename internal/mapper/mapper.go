// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/api"
	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"
)

// ToAPIWorkspace maps entities.Workspace to transport model.
func ToAPIWorkspace(ws entities.Workspace) api.Workspace {
	return api.Workspace{
		ID:              ws.ID,
		SlackTeamID:     ws.SlackTeamID,
		ReportChannelID: ws.ReportChannelID,
		DefaultTime:     ws.DefaultTime,
		Timezone:        ws.Timezone,
		CreatedAt:       ws.CreatedAt,
		UpdatedAt:       ws.UpdatedAt,
	}
}

// ToAPIWorkspaceList maps a slice of entities.Workspace to transport slice.
func ToAPIWorkspaceList(list []entities.Workspace) []api.Workspace {
	res := make([]api.Workspace, 0, len(list))
	for _, ws := range list {
		res = append(res, ToAPIWorkspace(ws))
	}
	return res
}

// ToAPIMember maps entities.Member to transport model.
func ToAPIMember(m entities.Member) api.Member {
	return api.Member{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		SlackUserID: m.SlackUserID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToAPIMemberList maps a slice of entities.Member to transport slice.
func ToAPIMemberList(list []entities.Member) []api.Member {
	res := make([]api.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMember(m))
	}
	return res
}

// FromAPISettings builds an entities.WorkspaceSettings from the PATCH body.
func FromAPISettings(req api.UpdateWorkspaceSettingsRequest) entities.WorkspaceSettings {
	return entities.WorkspaceSettings{
		DefaultTime:     req.DefaultTime,
		Timezone:        req.Timezone,
		ReportChannelID: req.ReportChannelID,
	}
}

// FromAPIMemberUpdate builds an entities.MemberUpdate from the PATCH body.
func FromAPIMemberUpdate(req api.UpdateMemberRequest) entities.MemberUpdate {
	return entities.MemberUpdate{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		IsActive:    req.IsActive,
	}
}
