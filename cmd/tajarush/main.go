// Package main provides the CLI entrypoint for tajarush.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tajarush/internal/config"
	"github.com/verte-zerg/tajarush/internal/game"
	"github.com/verte-zerg/tajarush/internal/model"
	"github.com/verte-zerg/tajarush/internal/replay"
	"github.com/verte-zerg/tajarush/internal/stats"
	"github.com/verte-zerg/tajarush/internal/tui"
	"github.com/verte-zerg/tajarush/internal/wordbank"
)

const (
	defaultLang     = "korean"
	defaultDuration = game.DefaultSessionLength
	defaultLogLevel = "warn"
)

var (
	gameLang     string
	gameDuration int
	gameSeed     int64
	logLevel     string

	wordsDifficulty string

	replayScript string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tajarush",
		Short:         "Korean/English typing practice game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.PersistentFlags().StringVar(&gameLang, "lang", defaultLang, "word language: korean or english")
	rootCmd.PersistentFlags().IntVar(&gameDuration, "duration", defaultDuration, "session length in seconds")
	rootCmd.PersistentFlags().Int64Var(&gameSeed, "seed", 0, "random seed for word selection (0 = random)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newReplayCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tajarush needs an interactive terminal; use `tajarush replay` for scripted sessions")
	}

	picker := wordbank.New(wordbank.Default(), cfg.Seed)
	m := tui.NewModel(cfg, picker, log)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the word catalog",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsDifficulty, "difficulty", "", "only this difficulty (easy, medium, hard)")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	langs := model.Languages
	if cmd.Flags().Changed("lang") {
		lang, err := model.ParseLanguage(gameLang)
		if err != nil {
			return err
		}
		langs = []model.Language{lang}
	}
	diffs := model.Difficulties
	if wordsDifficulty != "" {
		diff, err := model.ParseDifficulty(wordsDifficulty)
		if err != nil {
			return err
		}
		diffs = []model.Difficulty{diff}
	}
	return writeCatalog(cmd.OutOrStdout(), wordbank.Default(), langs, diffs)
}

func writeCatalog(w io.Writer, catalog *wordbank.Catalog, langs []model.Language, diffs []model.Difficulty) error {
	for _, lang := range langs {
		for _, diff := range diffs {
			words := catalog.Words(lang, diff)
			if _, err := fmt.Fprintf(w, "%s/%s: %s\n", lang, diff, strings.Join(words, ", ")); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a scripted session and print the result",
		Args:  cobra.NoArgs,
		RunE:  runReplayCmd,
	}
	cmd.Flags().StringVar(&replayScript, "script", "-", "YAML script path (- for stdin)")
	return cmd
}

func runReplayCmd(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if replayScript != "-" {
		f, err := os.Open(replayScript)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.WithError(cerr).Warn("failed to close script")
			}
		}()
		in = f
	} else if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("--script is required when stdin is a terminal")
	}

	sc, err := replay.Parse(in)
	if err != nil {
		return err
	}
	cfg, err = sc.Overlay(cfg)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	picker := wordbank.New(wordbank.Default(), cfg.Seed)
	report, err := replay.Run(cmd.Context(), cfg, sc.Events, picker, log)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}
	return writeReport(cmd.OutOrStdout(), cfg.Lang, report)
}

func writeReport(w io.Writer, lang model.Language, report replay.Report) error {
	if report.Ended {
		return stats.RenderResult(w, lang, report.Result)
	}
	st := report.Final
	_, err := fmt.Fprintf(w, "session %s: %s, %ds left, score %d, combo %d, %s, %d/%d correct, word %q\n",
		report.SessionID, st.Phase, st.TimeRemaining, st.Score, st.Combo, st.Difficulty, st.Correct, st.Attempts, st.Word)
	return err
}

// loadSettings merges the config file with explicitly set flags and builds the logger.
func loadSettings(cmd *cobra.Command) (model.Config, *logrus.Logger, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &gameLang, fileCfg.Game.Lang)
	applyIntConfig(cmd, "duration", &gameDuration, fileCfg.Game.Duration)
	applyInt64Config(cmd, "seed", &gameSeed, fileCfg.Game.Seed)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	log, err := newLogger(os.Stderr, logLevel)
	if err != nil {
		return model.Config{}, nil, err
	}

	lang, err := model.ParseLanguage(gameLang)
	if err != nil {
		return model.Config{}, nil, fmt.Errorf("--lang: %w", err)
	}
	cfg := model.Config{
		Lang:     lang,
		Duration: gameDuration,
		Seed:     gameSeed,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, nil, err
	}
	return cfg, log, nil
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var flagNames = map[string]string{
	"Lang":     "--lang",
	"Duration": "--duration",
	"Seed":     "--seed",
}

func validateConfig(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := flagNames[fe.Field()]
		switch fe.Tag() {
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", name, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", name, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", name, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", name))
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "\n"))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tajarush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q          # korean or english
# duration = %d          # Session length in seconds
# seed = 0               # Word selection seed (0 = random)

[log]
# level = %q           # debug, info, warn, error
`,
		defaultLang,
		defaultDuration,
		defaultLogLevel,
	)
}

