package pick

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bodrovis/csv-import-guard/internal/app"
	"github.com/bodrovis/csv-import-guard/internal/logging"
	"github.com/bodrovis/csv-import-guard/internal/tui/picker"
	"github.com/bodrovis/csv-import-guard/pkg/validator"
)

var ErrNotATerminal = errors.New("pick needs an interactive terminal: use validate instead")

// ErrCancelled is returned when the picker was closed without importing.
var ErrCancelled = errors.New("import cancelled")

var isTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runProgram is swapped in tests, which cannot drive a real terminal.
var runProgram = func(cmd *cobra.Command, m *picker.Model) (*picker.Model, error) {
	final, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	).Run()
	if err != nil {
		return nil, err
	}
	res, ok := final.(*picker.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", final)
	}
	return res, nil
}

// uiLogger keeps log lines off the stream the picker draws on: with debug
// they go to a file, otherwise nowhere.
func uiLogger(a *app.App) (*log.Logger, func() error, error) {
	if !a.Config.Debug {
		return logging.Discard(), func() error { return nil }, nil
	}
	logger, closeLog, err := logging.ToFile(a.Fs, logging.DebugFile)
	if err != nil {
		return nil, nil, err
	}
	a.Logger.Debug("Picker logs redirected", "file", logging.DebugFile)
	return logger, closeLog, nil
}

func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick [dir]",
		Short: "Pick a CSV file interactively and import it once it passes",
		Long: `Browse a directory, select a file and see every check resolve.
The file can only be imported after all checks passed. The imported path is
printed to stdout, so the command composes with other tools:

  cp "$(csv-import-guard pick ./exports)" ./incoming/
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return ErrNotATerminal
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			info, err := a.Fs.Stat(abs)
			if err != nil {
				return fmt.Errorf("directory not accessible: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("not a directory: %s", abs)
			}

			logger, closeLog, err := uiLogger(a)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			a.Logger.Debug("Starting picker", "dir", abs)
			v := validator.New(validator.WithLogger(logger), validator.WithLocale(a.Validator.Locale()))
			res, err := runProgram(cmd, picker.New(abs, v, a.Fs, logger))
			if err != nil {
				return fmt.Errorf("picker failed: %w", err)
			}

			if res.Imported == "" {
				return ErrCancelled
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Imported)
			return nil
		},
	}
}
