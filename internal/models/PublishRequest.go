package models

import "strings"

type PublishRequest struct {
	ID             string `json:"id" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	InstructorID   string `json:"instructorId" validate:"required"`
	InstructorName string `json:"instructorName"`
	Reference      string `json:"reference"`
	Duration       string `json:"duration"`
	Thumbnail      string `json:"thumbnail"`
}

// Normalize trims surrounding whitespace so blank fields fail validation.
func (r *PublishRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.InstructorID = strings.TrimSpace(r.InstructorID)
	r.InstructorName = strings.TrimSpace(r.InstructorName)
	r.Reference = strings.TrimSpace(r.Reference)
}

// DeliveryFailure reports a notification stream that did not receive its
// record. The library entry is unaffected.
type DeliveryFailure struct {
	Stream  Stream `json:"stream"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// PublishResult is returned whenever the library write succeeded. A nil
// notification means its stream is listed in Failures.
type PublishResult struct {
	LibraryItem          ContentItem       `json:"libraryItem"`
	AudienceNotification *Notification     `json:"audienceNotification,omitempty"`
	AdminNotification    *Notification     `json:"adminNotification,omitempty"`
	Failures             []DeliveryFailure `json:"failures,omitempty"`
}

func (r *PublishResult) Complete() bool {
	return len(r.Failures) == 0
}

type CleanupReport struct {
	NotificationsRemoved map[Stream]int `json:"notificationsRemoved"`
	LibraryRemoved       int            `json:"libraryRemoved"`
	RevenueRemoved       int            `json:"revenueRemoved"`
}
