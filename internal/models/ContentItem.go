package models

import "time"

// ContentItem is a published entry of the content library.
type ContentItem struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	InstructorID      string    `json:"instructorId"`
	InstructorName    string    `json:"instructorName"`
	PlayableReference string    `json:"playableReference"`
	ViewCount         int64     `json:"viewCount"`
	PublishedAt       time.Time `json:"publishedAt"`
	Duration          string    `json:"duration,omitempty"`
	Thumbnail         string    `json:"thumbnail,omitempty"`
}
