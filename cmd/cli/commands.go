package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-assistant/config"
	"voice-assistant/internal/app"
	"voice-assistant/internal/audio"
	"voice-assistant/internal/command"
	"voice-assistant/pkg/log"
)

type cli struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "voicectl",
		Short: "Voice assistant command line",
		Long: `Run assistant operations without the HTTP server.

Examples:
  voicectl handle what time is it
  voicectl handle remind me to call mom
  voicectl reminders list
  voicectl reminders clear
  voicectl speak good morning
  voicectl sweep`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: ./config/config.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(c.handleCmd(), c.remindersCmd(), c.speakCmd(), c.sweepCmd())
	return root
}

// open loads configuration and wires the use cases.
func (c *cli) open(cmd *cobra.Command) (*app.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if c.verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	return app.New(cmd.Context(), cfg, logger)
}

func (c *cli) handleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handle <utterance...>",
		Short: "Answer an utterance as the assistant would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			out, err := a.Command.Handle(cmd.Context(), command.HandleInput{Text: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Response)
			return nil
		},
	}
}

func (c *cli) remindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Inspect or clear stored reminders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reminders in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			out, err := a.Reminder.List(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out.Reminders) == 0 {
				fmt.Fprintln(w, "No reminders.")
				return nil
			}
			for _, r := range out.Reminders {
				fmt.Fprintf(w, "%s  %s\n", r.TimeText(), r.Text)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			if err := a.Reminder.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All reminders cleared")
			return nil
		},
	})

	return cmd
}

func (c *cli) speakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <text...>",
		Short: "Synthesize text into an MP3 artifact and print its path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			out, err := a.Audio.Speak(cmd.Context(), audio.SpeakInput{Text: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out.URL, out.Duration.Round(time.Millisecond))
			return nil
		},
	}
}

func (c *cli) sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete speech artifacts older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			out, err := a.Audio.Sweep(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted=%d skipped=%d kept=%d\n", out.Deleted, out.Skipped, out.Kept)
			return nil
		},
	}
}
