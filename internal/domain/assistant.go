package domain

// ChatMessage is one turn of a diagnostics conversation as sent by the
// client.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the assistant's answer. Timestamp is an ISO-8601 string.
type ChatReply struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
