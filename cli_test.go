package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/borgmon/rise-ease/pkg/assistant"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	turns []assistant.Turn
}

func (s *stubCompleter) Complete(ctx context.Context, turns []assistant.Turn) (string, error) {
	s.turns = turns
	return s.reply, nil
}

func TestResolveNow(t *testing.T) {
	now := time.Date(2024, 3, 4, 13, 37, 12, 0, time.UTC)

	got, err := resolveNow("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = resolveNow("08:15", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 8, 15, 0, 0, time.UTC), got)

	_, err = resolveNow("25:00", now)
	assert.ErrorIs(t, err, models.ErrMalformedTime)
}

func TestUntilLabel(t *testing.T) {
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	label, err := untilLabel("9:00", "AM", now)
	require.NoError(t, err)
	assert.Equal(t, "1H and 0Min", label)

	label, err = untilLabel("7:00", "am", now)
	require.NoError(t, err)
	assert.Equal(t, "23H and 0Min", label)

	_, err = untilLabel("9:00", "noon", now)
	assert.ErrorContains(t, err, "period must be am or pm")

	_, err = untilLabel("nine", "am", now)
	assert.ErrorIs(t, err, models.ErrMalformedTime)
}

func TestApplyOverrides(t *testing.T) {
	v := viper.New()
	v.Set("api_key", "sk-test")
	v.Set("base_url", "http://localhost:8080/v1/")
	v.Set("max_messages", 6)

	config := models.DefaultConfig()
	applyOverrides(config, v)

	assert.Equal(t, "sk-test", config.APIKey)
	assert.Equal(t, models.DefaultModel, config.Model, "unset values keep the saved setting")
	assert.Equal(t, "http://localhost:8080/v1", config.BaseURL)
	assert.Equal(t, 6, config.MaxMessages)
	assert.False(t, config.NeedsAPIKey())
}

func TestExportScheduleToStdout(t *testing.T) {
	var out bytes.Buffer
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	require.NoError(t, exportSchedule(&out, "", models.DefaultWeekSchedule(), now))

	ics := out.String()
	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR"))
	assert.Equal(t, 7, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestExportScheduleToFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "week.ics")

	require.NoError(t, exportSchedule(&out, path, models.DefaultWeekSchedule(), time.Now()))
	assert.Equal(t, "Schedule written to "+path+"\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RRULE:FREQ=WEEKLY")
}

func TestExportScheduleBadPath(t *testing.T) {
	err := exportSchedule(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "week.ics"), models.DefaultWeekSchedule(), time.Now())
	assert.ErrorContains(t, err, "failed to create")
}

func TestAsk(t *testing.T) {
	completer := &stubCompleter{reply: "Keep a regular bedtime."}
	var out bytes.Buffer

	err := ask(context.Background(), &out, assistant.NewConversation(completer, 0), "How do I sleep better?")
	require.NoError(t, err)

	assert.Equal(t, "Keep a regular bedtime.\n", out.String())
	require.NotEmpty(t, completer.turns)
	assert.Equal(t, "How do I sleep better?", completer.turns[len(completer.turns)-1].Content)
}

func TestAskRejectsBlankQuestion(t *testing.T) {
	completer := &stubCompleter{reply: "unused"}

	err := ask(context.Background(), &bytes.Buffer{}, assistant.NewConversation(completer, 0), "   ")
	assert.EqualError(t, err, "question is empty")
	assert.Nil(t, completer.turns)
}

func TestUntilCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"until", "11:00", "pm", "--now", "21:30", "--env-file", ""})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "1H and 30Min\n", out.String())
}
