package main

import (
	"context"
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/assistant"
	"github.com/borgmon/rise-ease/pkg/models"
)

const sendTimeout = 2 * time.Minute

// AssistantScreen is the chat with the sleep assistant
type AssistantScreen struct {
	conversation *assistant.Conversation

	messages []models.ChatMessage
	busy     bool

	content    fyne.CanvasObject
	bubbles    *fyne.Container
	scroll     *container.Scroll
	entry      *widget.Entry
	sendButton *widget.Button
	thinking   *widget.Label
}

func NewAssistantScreen(conversation *assistant.Conversation) *AssistantScreen {
	as := &AssistantScreen{
		conversation: conversation,
		messages:     conversation.Messages(),
	}

	conversation.OnUpdate = func(messages []models.ChatMessage, busy bool) {
		fyne.Do(func() {
			as.update(messages, busy)
		})
	}

	as.buildUI()
	return as
}

func (as *AssistantScreen) Content() fyne.CanvasObject {
	return as.content
}

func (as *AssistantScreen) buildUI() {
	as.bubbles = container.NewVBox()
	as.scroll = container.NewVScroll(as.bubbles)
	as.renderMessages()

	as.entry = widget.NewEntry()
	as.entry.SetPlaceHolder("Ask about your sleep...")
	as.entry.OnSubmitted = func(string) {
		as.send()
	}

	as.sendButton = widget.NewButtonWithIcon("Send", theme.MailSendIcon(), as.send)
	as.sendButton.Importance = widget.HighImportance

	as.thinking = widget.NewLabel("Thinking...")
	as.thinking.Importance = widget.LowImportance
	as.thinking.Hide()

	title := widget.NewLabelWithStyle("Sleep Assistant", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	as.content = container.NewBorder(
		title,
		container.NewVBox(
			as.thinking,
			container.NewBorder(nil, nil, nil, as.sendButton, as.entry),
		),
		nil,
		nil,
		as.scroll,
	)
}

func (as *AssistantScreen) send() {
	text := as.entry.Text
	if as.busy || text == "" {
		return
	}
	as.entry.SetText("")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if _, err := as.conversation.Send(ctx, text); err != nil {
			if errors.Is(err, assistant.ErrBusy) {
				return
			}
			log.Printf("Failed to send message: %v", err)
		}
	}()
}

func (as *AssistantScreen) update(messages []models.ChatMessage, busy bool) {
	as.messages = messages
	as.busy = busy

	if busy {
		as.thinking.Show()
		as.sendButton.Disable()
	} else {
		as.thinking.Hide()
		as.sendButton.Enable()
	}

	as.renderMessages()
	as.scroll.ScrollToBottom()
}

func (as *AssistantScreen) renderMessages() {
	bubbles := make([]fyne.CanvasObject, 0, len(as.messages))
	for _, message := range as.messages {
		bubbles = append(bubbles, messageBubble(message))
	}
	as.bubbles.Objects = bubbles
	as.bubbles.Refresh()
}

// messageBubble puts user messages on the right and assistant messages on the left
func messageBubble(message models.ChatMessage) fyne.CanvasObject {
	text := widget.NewLabel(message.Text)
	text.Wrapping = fyne.TextWrapWord

	if message.Sender == models.SenderUser {
		text.Alignment = fyne.TextAlignTrailing
		text.Importance = widget.HighImportance
		return widget.NewCard("", "You", text)
	}
	return widget.NewCard("", "RiseEase", text)
}
