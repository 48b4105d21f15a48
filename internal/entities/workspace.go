// Package entities contains core business entities.
package entities

import "time"

// Workspace is a tenant: an isolated Slack team with its own members and schedule.
// BotToken and BotUserID are the credentials recorded at install time.
type Workspace struct {
	ID              string
	SlackTeamID     string
	ReportChannelID string
	DefaultTime     string
	Timezone        string
	BotToken        string
	BotUserID       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkspaceSettings enumerates the workspace fields that may change.
// Nil fields are left untouched.
type WorkspaceSettings struct {
	DefaultTime     *string
	Timezone        *string
	ReportChannelID *string
}

// Empty reports whether no field is set.
func (s WorkspaceSettings) Empty() bool {
	return s.DefaultTime == nil && s.Timezone == nil && s.ReportChannelID == nil
}

// Reschedules reports whether applying the settings changes the dispatch trigger.
func (s WorkspaceSettings) Reschedules() bool {
	return s.DefaultTime != nil || s.Timezone != nil
}
