package assistant

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/borgmon/rise-ease/pkg/models"
)

const (
	// Greeting opens every conversation
	Greeting = "Hello! How can I help you rise with ease?"

	// LimitNotice replaces the send once the conversation is full
	LimitNotice = "You have reached the maximum number of messages allowed. Please try again later."

	// FailureReply replaces the assistant turn when the completion call fails
	FailureReply = "Sorry, something went wrong. Please try again later."

	// SystemPrompt is injected ahead of every request
	SystemPrompt = "You are a sleep wellness AI assistant for the app RiseEase. Your tasks are: " +
		"1. Provide concise and summarized responses. " +
		"2. Focus on improving the user's sleeping habits. " +
		"3. Avoid overly technical language and keep responses user-friendly and personable " +
		"4. Offer actionable advice when possible."
)

// ErrBusy is returned by Send while a previous message is still waiting for a reply
var ErrBusy = errors.New("a message is already being sent")

// Conversation holds the assistant chat and forwards user turns to a Completer.
// Only one send may be outstanding at a time.
type Conversation struct {
	mu          sync.Mutex
	completer   Completer
	maxMessages int
	messages    []models.ChatMessage
	busy        bool

	// OnUpdate is called with a snapshot whenever messages or the busy state change.
	// It runs on the sending goroutine.
	OnUpdate func(messages []models.ChatMessage, busy bool)
}

// NewConversation creates a conversation that starts with the greeting
func NewConversation(completer Completer, maxMessages int) *Conversation {
	if maxMessages <= 0 {
		maxMessages = models.DefaultMaxMessages
	}

	return &Conversation{
		completer:   completer,
		maxMessages: maxMessages,
		messages: []models.ChatMessage{
			{ID: 1, Text: Greeting, Sender: models.SenderBot},
		},
	}
}

// SetCompleter swaps the completion backend, e.g. after the API key changes
func (c *Conversation) SetCompleter(completer Completer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completer = completer
}

// Messages returns a snapshot of the conversation
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

// Busy reports whether a send is waiting for its reply
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Send appends the user's text and the assistant's reply. Blank input is
// ignored. Once the conversation holds maxMessages messages a limit notice is
// appended instead and nothing is sent. Completion failures are logged and
// replaced with FailureReply; the only error returned is ErrBusy.
func (c *Conversation) Send(ctx context.Context, text string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return c.Messages(), nil
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, ErrBusy
	}

	if len(c.messages) >= c.maxMessages {
		c.appendLocked(LimitNotice, models.SenderBot)
		snapshot := slices.Clone(c.messages)
		c.mu.Unlock()
		c.notify(snapshot, false)
		return snapshot, nil
	}

	c.appendLocked(text, models.SenderUser)
	turns := c.turnsLocked()
	completer := c.completer
	c.busy = true
	snapshot := slices.Clone(c.messages)
	c.mu.Unlock()
	c.notify(snapshot, true)

	reply, err := c.complete(ctx, completer, turns)
	if err != nil {
		log.Printf("Error communicating with completion API: %v", err)
		reply = FailureReply
	}

	c.mu.Lock()
	c.appendLocked(reply, models.SenderBot)
	c.busy = false
	snapshot = slices.Clone(c.messages)
	c.mu.Unlock()
	c.notify(snapshot, false)

	return snapshot, nil
}

func (c *Conversation) complete(ctx context.Context, completer Completer, turns []Turn) (string, error) {
	if completer == nil {
		return "", errors.New("no completion backend configured")
	}
	return completer.Complete(ctx, turns)
}

// appendLocked adds a message numbered after the current length
func (c *Conversation) appendLocked(text string, sender models.Sender) {
	c.messages = append(c.messages, models.ChatMessage{
		ID:     len(c.messages) + 1,
		Text:   text,
		Sender: sender,
	})
}

// turnsLocked maps the conversation onto completion turns behind the system prompt
func (c *Conversation) turnsLocked() []Turn {
	turns := make([]Turn, 0, len(c.messages)+1)
	turns = append(turns, Turn{Role: "system", Content: SystemPrompt})
	for _, msg := range c.messages {
		turns = append(turns, Turn{Role: msg.Role(), Content: msg.Text})
	}
	return turns
}

func (c *Conversation) notify(messages []models.ChatMessage, busy bool) {
	if c.OnUpdate != nil {
		c.OnUpdate(messages, busy)
	}
}
