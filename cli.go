package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"clipx/internal/clip"
	"clipx/internal/config"
	"clipx/internal/detect"
	"clipx/internal/inspector"
	"clipx/internal/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "clipx",
		Short: "Inspect the system clipboard",
		Long: `clipx shows every format the system clipboard currently holds and lets
you inspect each one as decoded text, image info, a zip listing, or a hex
grid with mouse selection. Text formats can be edited and written back.

Run without arguments for the interactive inspector. The subcommands
(formats, show, write) cover scripted use.

Config file: $HOME/.config/clipx/clipx.toml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The TUI owns the terminal, so logs go to a state file.
			closeLog, err := logging.SetupFile(logging.ParseLevel(logLevel))
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer closeLog()
			return runTUI()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "auto", "log format for subcommands (auto, text, json)")

	cobra.OnInitialize(func() {
		logging.Setup(logging.ParseFormat(logFormat), logging.ParseLevel(logLevel))
	})

	return root
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config load failed, using defaults", "err", err)
	}

	backend := clip.New()
	defer backend.Close()

	model := inspector.NewModel(backend, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the MIME formats currently on the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend := clip.New()
			defer backend.Close()

			formats, err := backend.Formats()
			if err != nil {
				return err
			}
			for _, f := range formats {
				cmd.Println(f)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <mime>",
		Short: "Print one clipboard format to stdout",
		Long: `show prints the clipboard's content for one MIME format. On a terminal
the payload is decoded to readable text; when piped (or with --raw) the
bytes pass through untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := clip.New()
			defer backend.Close()

			data, err := backend.Read(args[0])
			if err != nil {
				return err
			}
			if !raw && logging.IsTTY(os.Stdout) {
				fmt.Println(detect.SanitizeText(detect.DecodeText(data)))
				return nil
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "write raw bytes even on a terminal")
	return cmd
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write [mime]",
		Short: "Replace the clipboard contents from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mime := clip.FormatText
			if len(args) == 1 {
				mime = args[0]
			}

			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}

			backend := clip.New()
			defer backend.Close()

			if err := backend.Write(mime, data); err != nil {
				return err
			}
			slog.Debug("clipboard written", "mime", mime, "bytes", len(data))
			return nil
		},
	}
}
