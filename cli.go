package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/borgmon/rise-ease/pkg/assistant"
	"github.com/borgmon/rise-ease/pkg/calendar"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "RISE_EASE"

var rootCmd = &cobra.Command{
	Use:   "rise-ease",
	Short: "Sleep assistant with alarms, a weekly schedule and a chat coach",
	Long: `Rise Ease keeps your alarms, plans your week of sleep and answers
sleep questions through an OpenAI-compatible chat API.

Run without a subcommand to open the app window.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI()
	},
}

var untilCmd = &cobra.Command{
	Use:   "until <H:MM> <am|pm>",
	Short: "Print how long until an alarm would ring",
	Example: `  rise-ease until 6:30 am
  rise-ease until 12:00 pm --now 08:15`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nowFlag, _ := cmd.Flags().GetString("now")
		now, err := resolveNow(nowFlag, time.Now())
		if err != nil {
			return err
		}

		label, err := untilLabel(args[0], args[1], now)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Work with the weekly bed and alarm schedule",
}

var scheduleExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the default weekly schedule as an iCalendar file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		return exportSchedule(cmd.OutOrStdout(), out, models.DefaultWeekSchedule(), time.Now())
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the sleep assistant one question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := models.DefaultConfig()
		applyOverrides(config, viper.GetViper())
		if config.NeedsAPIKey() {
			return fmt.Errorf("no API key: set %s_API_KEY or pass --api-key", envPrefix)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		client := assistant.NewClientFromConfig(config)
		return ask(ctx, cmd.OutOrStdout(), assistant.NewConversation(client, config.MaxMessages), strings.Join(args, " "))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("api-key", "", "completion API key (env "+envPrefix+"_API_KEY)")
	flags.String("model", "", "completion model (env "+envPrefix+"_MODEL)")
	flags.String("base-url", "", "completion API root (env "+envPrefix+"_BASE_URL)")

	viper.BindPFlag("api_key", flags.Lookup("api-key"))
	viper.BindPFlag("model", flags.Lookup("model"))
	viper.BindPFlag("base_url", flags.Lookup("base-url"))

	untilCmd.Flags().String("now", "", "pretend the current time is HH:MM (24-hour)")
	scheduleExportCmd.Flags().StringP("out", "o", "", "write to this file instead of stdout")

	scheduleCmd.AddCommand(scheduleExportCmd)
	rootCmd.AddCommand(untilCmd, scheduleCmd, askCmd)
}

// initConfig loads the dotenv file and wires the environment into viper
func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	if envFile != "" {
		// Variables already in the environment win over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Failed to load %s: %v", envFile, err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// applyOverrides copies non-empty flag and environment values over config
func applyOverrides(config *models.Config, v *viper.Viper) {
	if apiKey := v.GetString("api_key"); apiKey != "" {
		config.APIKey = apiKey
	}
	if model := v.GetString("model"); model != "" {
		config.Model = model
	}
	if baseURL := v.GetString("base_url"); baseURL != "" {
		config.BaseURL = baseURL
	}
	if maxMessages := v.GetInt("max_messages"); maxMessages > 0 {
		config.MaxMessages = maxMessages
	}
	config.Normalize()
}

// resolveNow returns now, or today at the given 24-hour HH:MM
func resolveNow(clock string, now time.Time) (time.Time, error) {
	if clock == "" {
		return now, nil
	}

	offset, err := models.ParseClock24(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}

	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Add(offset), nil
}

func untilLabel(clock, period string, now time.Time) (string, error) {
	p := models.Period(strings.ToLower(period))
	if p != models.PeriodAM && p != models.PeriodPM {
		return "", fmt.Errorf("period must be am or pm, got %q", period)
	}
	return models.DurationLabel(clock, p, now)
}

func exportSchedule(stdout io.Writer, path string, schedule models.WeekSchedule, now time.Time) error {
	if path == "" {
		return calendar.ExportSchedule(stdout, schedule, now)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := calendar.ExportSchedule(f, schedule, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "Schedule written to %s\n", path)
	return nil
}

func ask(ctx context.Context, out io.Writer, conversation *assistant.Conversation, question string) error {
	if strings.TrimSpace(question) == "" {
		return errors.New("question is empty")
	}

	messages, err := conversation.Send(ctx, question)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, messages[len(messages)-1].Text)
	return nil
}
