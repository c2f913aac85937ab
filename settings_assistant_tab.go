package main

import (
	"fmt"
	"net/url"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func (sw *SettingsWindow) buildAssistantTab() fyne.CanvasObject {
	changed := func(string) {
		sw.markChanged()
	}

	sw.apiKeyEntry = widget.NewPasswordEntry()
	sw.apiKeyEntry.SetPlaceHolder("sk-...")
	sw.apiKeyEntry.SetText(sw.config.APIKey)
	sw.apiKeyEntry.OnChanged = changed

	sw.modelEntry = widget.NewEntry()
	sw.modelEntry.SetText(sw.config.Model)
	sw.modelEntry.OnChanged = changed

	sw.baseURLEntry = widget.NewEntry()
	sw.baseURLEntry.SetText(sw.config.BaseURL)
	sw.baseURLEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("URL must start with http:// or https://")
		}
		return nil
	}
	sw.baseURLEntry.OnChanged = changed

	sw.maxMessagesEntry = widget.NewEntry()
	sw.maxMessagesEntry.SetText(strconv.Itoa(sw.config.MaxMessages))
	sw.maxMessagesEntry.Validator = func(s string) error {
		if n, err := strconv.Atoi(s); err != nil || n < 1 {
			return fmt.Errorf("enter a whole number above 0")
		}
		return nil
	}
	sw.maxMessagesEntry.OnChanged = changed

	apiKeyLabel := widget.NewLabel("API Key:")
	apiKeyHelp := widget.NewLabel("Bearer token for the chat completion API. The assistant apologises until one is set.")
	apiKeyHelp.Wrapping = fyne.TextWrapWord
	apiKeyHelp.Importance = widget.MediumImportance

	modelLabel := widget.NewLabel("Model:")
	baseURLLabel := widget.NewLabel("API Base URL:")
	baseURLHelp := widget.NewLabel("Any OpenAI compatible endpoint")
	baseURLHelp.Importance = widget.MediumImportance

	maxMessagesLabel := widget.NewLabel("Message Limit:")
	maxMessagesHelp := widget.NewLabel("Messages per conversation, greeting included. Applies after restart.")
	maxMessagesHelp.Wrapping = fyne.TextWrapWord
	maxMessagesHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(apiKeyLabel, apiKeyHelp),
		sw.apiKeyEntry,

		modelLabel,
		sw.modelEntry,

		container.NewVBox(baseURLLabel, baseURLHelp),
		sw.baseURLEntry,

		container.NewVBox(maxMessagesLabel, maxMessagesHelp),
		sw.maxMessagesEntry,
	)

	content := container.NewVBox(
		widget.NewLabel("Assistant Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}
