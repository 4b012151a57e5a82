package pick

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodrovis/csv-import-guard/internal/app"
	"github.com/bodrovis/csv-import-guard/internal/checks"
	"github.com/bodrovis/csv-import-guard/internal/logging"
	"github.com/bodrovis/csv-import-guard/internal/tui/picker"
)

func stubTerminal(t *testing.T, tty bool, run func(*picker.Model) *picker.Model) {
	t.Helper()
	prevTTY, prevRun := isTerminal, runProgram
	t.Cleanup(func() { isTerminal, runProgram = prevTTY, prevRun })

	isTerminal = func() bool { return tty }
	runProgram = func(_ *cobra.Command, m *picker.Model) (*picker.Model, error) {
		return run(m), nil
	}
}

func newApp(t *testing.T) *app.App {
	t.Helper()
	a := app.New()
	a.Fs = afero.NewMemMapFs()
	require.NoError(t, a.Fs.MkdirAll("/data", 0o755))
	require.NoError(t, afero.WriteFile(a.Fs, "/data/notes.txt", []byte("x"), 0o600))
	return a
}

func execute(a *app.App, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewCommand(a)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// executeUI runs the command with the app logger and the UI sharing stderr,
// as they do after the root command loaded its config.
func executeUI(a *app.App, args ...string) (string, error) {
	var ui bytes.Buffer
	a.Logger = logging.New(&ui, a.Config.Debug)
	cmd := NewCommand(a)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&ui)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ui.String(), err
}

// drain runs cmd and feeds what it produces back into m.
func drain(m *picker.Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(m, c)
		}
		return
	}
	m.Update(msg)
}

// selectMissing selects a file that is gone by the time it is read.
func selectMissing(report *checks.Status) func(*picker.Model) *picker.Model {
	return func(m *picker.Model) *picker.Model {
		drain(m, m.Select("/data/gone.csv"))
		*report = m.Report().Status(checks.NotEmpty)
		m.Cancelled = true
		return m
	}
}

func TestPick_RequiresTerminal(t *testing.T) {
	called := false
	stubTerminal(t, false, func(m *picker.Model) *picker.Model {
		called = true
		return m
	})

	_, err := execute(newApp(t), "/data")
	require.ErrorIs(t, err, ErrNotATerminal)
	assert.False(t, called)
}

func TestPick_PrintsImportedPath(t *testing.T) {
	stubTerminal(t, true, func(m *picker.Model) *picker.Model {
		m.Imported = "/data/contacts.csv"
		return m
	})

	out, err := execute(newApp(t), "/data")
	require.NoError(t, err)
	assert.Equal(t, "/data/contacts.csv\n", out)
}

func TestPick_Cancelled(t *testing.T) {
	stubTerminal(t, true, func(m *picker.Model) *picker.Model {
		m.Cancelled = true
		return m
	})

	out, err := execute(newApp(t), "/data")
	require.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, out)
}

func TestPick_RejectsBadDirectory(t *testing.T) {
	stubTerminal(t, true, func(m *picker.Model) *picker.Model { return m })
	a := newApp(t)

	_, err := execute(a, "/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not accessible")

	_, err = execute(a, "/data/notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestPick_TooManyArgs(t *testing.T) {
	stubTerminal(t, true, func(m *picker.Model) *picker.Model { return m })

	_, err := execute(newApp(t), "/a", "/b")
	require.Error(t, err)
}

func TestPick_ReadFailureDoesNotWriteToUI(t *testing.T) {
	var notEmpty checks.Status
	stubTerminal(t, true, selectMissing(&notEmpty))

	ui, err := executeUI(newApp(t), "/data")
	require.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, checks.Error, notEmpty)
	assert.Empty(t, ui)
}

func TestPick_DebugLogsGoToFile(t *testing.T) {
	var notEmpty checks.Status
	stubTerminal(t, true, selectMissing(&notEmpty))
	a := newApp(t)
	a.Config.Debug = true

	ui, err := executeUI(a, "/data")
	require.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, checks.Error, notEmpty)
	assert.NotContains(t, ui, "cannot read file content")
	assert.NotContains(t, ui, "Message received")

	data, err := afero.ReadFile(a.Fs, logging.DebugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cannot read file content")
	assert.Contains(t, string(data), "gone.csv")
}
