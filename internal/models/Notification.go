package models

import (
	"fmt"
	"time"
)

type NotificationKind string

const KindContentPublished NotificationKind = "content_published"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Stream names one of the two independent notification collections.
type Stream string

const (
	StreamAudience Stream = "audience"
	StreamAdmin    Stream = "admin"
)

var Streams = []Stream{StreamAudience, StreamAdmin}

func ParseStream(s string) (Stream, error) {
	switch Stream(s) {
	case StreamAudience, StreamAdmin:
		return Stream(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStream, s)
}

func (s Stream) Bucket() string {
	return "notifications." + string(s)
}

// Notification is a record of either stream. InstructorID and Priority are
// only set on the admin stream.
type Notification struct {
	ID             string           `json:"id"`
	Kind           NotificationKind `json:"kind"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	InstructorName string           `json:"instructorName"`
	ContentTitle   string           `json:"contentTitle"`
	ContentID      string           `json:"contentId"`
	CreatedAt      time.Time        `json:"createdAt"`
	IsRead         bool             `json:"isRead"`
	ReadAt         *time.Time       `json:"readAt,omitempty"`
	InstructorID   string           `json:"instructorId,omitempty"`
	Priority       Priority         `json:"priority,omitempty"`
}
