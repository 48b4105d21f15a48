// Package entities contains core business entities.
package entities

import "time"

// Conversation is the resumable progress marker for one member's in-flight
// question sequence. Absence of a row means no active conversation.
type Conversation struct {
	ID            int64
	MemberID      string
	PendingDate   time.Time
	QuestionIndex int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
