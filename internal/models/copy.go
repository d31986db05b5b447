package models

import "time"

// GeneratedCopy is copy text the designer chose to persist after a
// generation call. Created once, never mutated.
type GeneratedCopy struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	ClientID   *string   `json:"client_id,omitempty"`
	BriefingID *string   `json:"briefing_id,omitempty"`
	CopyType   PageType  `json:"copy_type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
