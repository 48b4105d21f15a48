// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrWorkspaceNotFound is returned when a workspace does not exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrWorkspaceExists signals slack team id conflict.
	ErrWorkspaceExists = errors.New("workspace exists")
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists signals slack user id conflict.
	ErrMemberExists = errors.New("member exists")
	// ErrReportNotFound is returned when no report row exists for a (member, date).
	ErrReportNotFound = errors.New("report not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidSchedule signals an unparsable dispatch time or unknown timezone.
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrDeliveryFailed signals an outbound message that could not be sent.
	ErrDeliveryFailed = errors.New("delivery failed")
	// ErrOutOfSequence signals a conversation whose stored question index no
	// longer maps onto the question catalog.
	ErrOutOfSequence = errors.New("conversation out of sequence")
)
