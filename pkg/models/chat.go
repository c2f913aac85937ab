package models

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// ChatMessage is one bubble in the assistant conversation
type ChatMessage struct {
	ID     int
	Text   string
	Sender Sender
}

// Role maps the sender onto the completion API role
func (m ChatMessage) Role() string {
	if m.Sender == SenderBot {
		return "assistant"
	}
	return "user"
}
