package models

import "time"

// Category represents one awards category with its fixed nominee slate
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Emoji    string    `json:"emoji,omitempty"`
	Nominees []Nominee `json:"nominees"`
}

// Nominee represents one candidate within a category
type Nominee struct {
	ID     string `json:"id"`
	Artist string `json:"artist"`
	Work   string `json:"work,omitempty"`
}

// Prediction represents a participant's chosen nominee for a category
type Prediction struct {
	Identity  string    `json:"identity"`
	Category  string    `json:"category"`
	Nominee   string    `json:"nominee"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Winner represents the admin-declared actual winner for a category.
// At most one row per category; a deleted row means the category is pending again.
type Winner struct {
	Category    string    `json:"category"`
	Nominee     string    `json:"nominee"`
	AnnouncedAt time.Time `json:"announced_at"`
}

// Participant holds the server-authoritative per-identity flags
type Participant struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"display_name"`
	Locked      bool   `json:"locked"`
}

// PickState classifies a nominee within a category for display
type PickState string

const (
	PickSelected  PickState = "selected"
	PickWinner    PickState = "winner"
	PickCorrect   PickState = "correct"
	PickIncorrect PickState = "incorrect"
	PickPending   PickState = "pending"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
