package domain

// ChatMessage is one entry in the append-only chat log. Messages keep their
// insertion order; they are never re-sorted by timestamp.
type ChatMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	IsAdmin   bool   `json:"isAdmin"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}
