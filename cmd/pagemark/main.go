// Package main is the entry point for the Pagemark word processor.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ljosa/pagemark/internal/app"
	"github.com/ljosa/pagemark/internal/config"
	"github.com/ljosa/pagemark/internal/print"
	"github.com/ljosa/pagemark/internal/storage"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	store, settings := loadSettings()

	var logPath string
	var width int

	rootCmd := &cobra.Command{
		Use:     "pagemark [file]",
		Short:   "A fixed-width terminal word processor",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width > 0 {
				settings.TextWidth = width
			}
			return runEditor(args[0], settings, store, logPath)
		},
	}
	rootCmd.Flags().StringVar(&logPath, "log", "", "Append diagnostic logs to this file")
	rootCmd.Flags().IntVar(&width, "width", 0, "Text width in columns (default from settings)")

	var font string
	var doubleSpace bool
	var pageNumbers bool
	var output string

	printCmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Format a document into fixed 66-row pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := print.Options{
				Font:        print.FontByName(font),
				DoubleSpace: doubleSpace,
				PageNumbers: pageNumbers,
			}
			return runPrint(args[0], output, opts)
		},
	}
	printCmd.Flags().StringVar(&font, "font", settings.Font, "Font: pica or elite")
	printCmd.Flags().BoolVar(&doubleSpace, "double-space", settings.DoubleSpace, "Put content on every other row")
	printCmd.Flags().BoolVar(&pageNumbers, "page-numbers", settings.PageNumbers, "Number pages after the first")
	printCmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	rootCmd.AddCommand(printCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the user's settings, falling back to defaults when
// no config directory is available.
func loadSettings() (*config.Store, config.Settings) {
	store, err := config.NewStore()
	if err != nil {
		return nil, config.DefaultSettings()
	}
	return store, store.LoadSettings()
}

func runEditor(path string, settings config.Settings, store *config.Store, logPath string) error {
	var logger *log.Logger
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
	}

	ed, err := app.New(app.Options{
		Path:     path,
		Store:    store,
		Settings: settings,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return ed.Run()
}

func runPrint(path, output string, opts print.Options) error {
	text, err := storage.Load(path)
	if err != nil {
		return err
	}

	pages := print.Compose(strings.Split(text, "\n"), opts)
	if output == "" {
		_, err = os.Stdout.WriteString(pages)
		return err
	}
	return storage.Save(output, pages)
}
