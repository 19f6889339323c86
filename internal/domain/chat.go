package domain

import "time"

// ChatSource is a grounding citation attached to a model reply.
type ChatSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatMessage is one entry in the assistant transcript. The transcript
// lives in UI state only and is lost on restart.
type ChatMessage struct {
	ID        string
	Role      ChatRole
	Text      string
	Timestamp time.Time
	Sources   []ChatSource
}
