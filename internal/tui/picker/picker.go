package picker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/bodrovis/csv-import-guard/internal/logging"
	"github.com/bodrovis/csv-import-guard/internal/render"
	"github.com/bodrovis/csv-import-guard/pkg/validator"
)

// rows taken by everything except the file list
const reservedRows = 18

type KeyMap struct {
	Remove key.Binding
	Import key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Remove: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove file")),
		Import: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		k.Remove, k.Import, k.Quit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5fd2")).
			MarginBottom(1)

	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd7ff"))

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

// validatedMsg carries a finished report. seq identifies the selection it
// belongs to so results for a replaced file are dropped.
type validatedMsg struct {
	seq    uint64
	path   string
	report validator.Report
}

// Model is a one-file picker: select a file, see its checklist, import it
// only when every check passed.
type Model struct {
	logger    *log.Logger
	validator *validator.Validator
	fs        afero.Fs
	messages  render.Messages

	files   filepicker.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	selected   string
	size       int64
	report     validator.Report
	validating bool
	seq        uint64
	notice     string

	// Imported is the chosen path once the user imported a valid file.
	Imported  string
	Cancelled bool
}

func New(dir string, v *validator.Validator, fsys afero.Fs, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if v == nil {
		v = validator.New(validator.WithLogger(logger))
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		logger:    logger,
		validator: v,
		fs:        fsys,
		messages:  render.MessagesFor(v.Locale()),
		files:     fp,
		spinner:   s,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		report:    validator.NewReport("", v.Locale()),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.files.Init()
}

// CanImport reports whether the import action is enabled.
func (m *Model) CanImport() bool {
	return m.selected != "" && !m.validating && m.report.Passed()
}

func (m *Model) Report() validator.Report { return m.report }

func (m *Model) Selected() string { return m.selected }

// Select makes path the current file, resets the checklist to pending and
// returns the command that validates it. The spinner only ticks while a
// validation is in flight.
func (m *Model) Select(path string) tea.Cmd {
	spinning := m.validating
	m.seq++
	seq := m.seq
	m.selected = path
	m.size = 0
	if info, err := m.fs.Stat(path); err == nil {
		m.size = info.Size()
	}
	m.report = validator.NewReport(filepath.Base(path), m.validator.Locale())
	m.validating = true
	m.notice = m.messages.Validating
	m.logger.Debug("File selected", "path", path, "seq", seq)

	v, fsys := m.validator, m.fs
	validate := func() tea.Msg {
		return validatedMsg{seq: seq, path: path, report: v.ValidateFile(context.Background(), fsys, path)}
	}
	if spinning {
		return validate
	}
	return tea.Batch(validate, m.spinner.Tick)
}

// Remove drops the current file and puts every check back to pending.
func (m *Model) Remove() {
	m.seq++
	m.selected = ""
	m.size = 0
	m.report = m.report.Reset()
	m.validating = false
	m.notice = ""
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	logging.LogMessage(m.logger, msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.files, cmd = m.files.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-reservedRows, 3),
		})
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Remove):
			if m.selected != "" {
				m.logger.Debug("File removed", "path", m.selected)
				m.Remove()
			}
			return m, nil
		case key.Matches(msg, m.keys.Import):
			if !m.CanImport() {
				return m, nil
			}
			m.Imported = m.selected
			m.notice = m.messages.Imported
			m.logger.Info("File imported", "path", m.selected)
			return m, tea.Quit
		}

	case validatedMsg:
		if msg.seq != m.seq {
			m.logger.Debug("Ignoring stale validation", "path", msg.path, "seq", msg.seq, "current", m.seq)
			return m, nil
		}
		m.report = msg.report
		m.validating = false
		if msg.report.Passed() {
			m.notice = m.messages.Valid
		} else {
			m.notice = m.messages.Invalid
		}
		return m, nil

	case spinner.TickMsg:
		if !m.validating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)
	cmds = append(cmds, cmd)

	if ok, path := m.files.DidSelectFile(msg); ok {
		cmds = append(cmds, m.Select(path))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	title := titleStyle.Render(m.messages.Title)

	current := m.messages.NoFile
	if m.selected != "" {
		current = fileStyle.Render(filepath.Base(m.selected)) +
			fmt.Sprintf(" (%s)", humanize.Bytes(uint64(m.size)))
	}

	notice := m.notice
	switch {
	case m.validating:
		notice = m.spinner.View() + " " + m.notice
	case m.selected != "" && m.notice != "":
		notice = render.Summary(m.report)
		if m.Imported != "" {
			notice = m.messages.Imported
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.files.View(),
		current,
		"",
		render.HeadingStyle.Render(m.messages.Requirements),
		render.Checklist(m.report, false),
		notice,
		helpStyle.Render(m.help.View(m.keys)),
	)
}
