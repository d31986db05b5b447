package models

import "time"

// LibraryPost is a gated article in the content library.
type LibraryPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content,omitempty"`
	Category     string    `json:"category"`
	PlanRequired Plan      `json:"plan_required"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`

	// Locked is derived per caller at read time, never stored.
	Locked bool `json:"locked"`
}

// Lesson is a video lesson; premium lessons require the pro plan.
type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url,omitempty"`
	Duration    string    `json:"duration"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`

	Locked bool `json:"locked"`
}

// CodeSnippet is a reusable code block; premium snippets require pro.
type CodeSnippet struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Code        string    `json:"code,omitempty"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`

	Locked bool `json:"locked"`
}

// Tip is a short practical note; premium tips require pro.
type Tip struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Category  string    `json:"category"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`

	Locked bool `json:"locked"`
}
