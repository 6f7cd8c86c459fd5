package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/ankimd/internal/card"
	"github.com/gubarz/ankimd/internal/config"
	"github.com/gubarz/ankimd/internal/editor"
	"github.com/gubarz/ankimd/internal/export"
	"github.com/gubarz/ankimd/internal/logging"
	"github.com/gubarz/ankimd/internal/parser"
	"github.com/gubarz/ankimd/internal/ui"
)

var version = "0.1.0"

var checkCmd = &cobra.Command{
	Use:   "check <input_file>",
	Short: "Parse a deck and report the number of cards",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var rootCmd = &cobra.Command{
	Use:   "ankimd <input_file> <output_file_name>",
	Short: "Markdown to Anki flashcards",
	Long: `Turns a markdown deck into Anki cards.

Headings set tags, "[](question)" and "[](definition)" open a section.
Review and edit the cards, then press x to export them as
<output_file_name>.txt, ready for Anki's text import.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runDeck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringP("output", "o", "", "Export mode: file, print, copy")
	rootCmd.Flags().Bool("print", false, "Print the deck (shorthand for -o print)")
	rootCmd.Flags().Bool("copy", false, "Copy the deck (shorthand for -o copy)")
	rootCmd.Flags().Bool("no-tui", false, "Export without opening the editor")

	bindFlags()
}

// bindFlags lets command-line flags override config values
func bindFlags() {
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// setupLogging builds the logger. While the editor owns the terminal,
// logs go to the configured file or nowhere.
func setupLogging(cmd *cobra.Command, quiet bool) (*slog.Logger, func() error, error) {
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		config.SetLogLevel(lvl)
	}
	return logging.New(logging.Options{
		Level:  config.GetLogLevel(),
		Format: config.GetLogFormat(),
		File:   config.GetLogFile(),
		Quiet:  quiet,
	})
}

// loadDeck parses the input file. Parse errors are reported as
// "Error: ..." without usage, matching the document format's messages.
func loadDeck(logger *slog.Logger, path string) ([]*card.Card, error) {
	p := parser.NewParser(parser.WithLogger(logger))
	cards, err := p.ParseFile(path)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			logger.Warn("document rejected", "file", path, "line", perr.Line, "error", perr.Kind)
			return nil, err
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logger.Info("document parsed", "file", path, "cards", len(cards))
	return cards, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := setupLogging(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	cards, err := loadDeck(logger, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d cards\n", len(cards))
	return nil
}

// resolveOutputMode applies the output shorthand flags over the config
func resolveOutputMode(cmd *cobra.Command) (export.Mode, error) {
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput(string(export.ModePrint))
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(string(export.ModeCopy))
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}
	return export.ParseMode(config.GetOutput())
}

func runDeck(cmd *cobra.Command, args []string) error {
	input, name := args[0], args[1]

	mode, err := resolveOutputMode(cmd)
	if err != nil {
		return err
	}
	noTUI, _ := cmd.Flags().GetBool("no-tui")

	logger, closeLog, err := setupLogging(cmd, !noTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	cards, err := loadDeck(logger, input)
	if err != nil {
		return err
	}

	ed := editor.New(cards)
	if !noTUI {
		exportRequested, err := ui.Run(ed)
		if err != nil {
			return err
		}
		if !exportRequested {
			logger.Info("quit without exporting")
			return nil
		}
	}

	exporter := export.NewExporter(mode, config.GetExtension())
	if err := exporter.Write(ed.Cards(), name); err != nil {
		return err
	}

	if mode == export.ModeFile {
		logger.Info("deck exported", "file", exporter.Path(name), "cards", ed.Len())
	} else {
		logger.Info("deck exported", "mode", mode, "cards", ed.Len())
	}
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
