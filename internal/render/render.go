package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/bodrovis/csv-import-guard/internal/checks"
	"github.com/bodrovis/csv-import-guard/pkg/validator"
)

var (
	successColor = lipgloss.Color("#52c41a")
	errorColor   = lipgloss.Color("#f5222d")
	pendingColor = lipgloss.Color("#faad14")

	ListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5f5fff")).
			Padding(0, 1)

	HeadingStyle = lipgloss.NewStyle().Bold(true)

	DetailStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
)

// Icon returns the glyph shown in front of a check.
func Icon(s checks.Status) string {
	switch s {
	case checks.Success:
		return "✔"
	case checks.Error:
		return "✖"
	default:
		return "◷"
	}
}

func StatusStyle(s checks.Status) lipgloss.Style {
	switch s {
	case checks.Success:
		return lipgloss.NewStyle().Foreground(successColor)
	case checks.Error:
		return lipgloss.NewStyle().Foreground(errorColor)
	default:
		return lipgloss.NewStyle().Foreground(pendingColor)
	}
}

// Checklist renders the four checks as a bordered list, in report order.
// Details are diagnostic and only shown when verbose is set.
func Checklist(r validator.Report, verbose bool) string {
	lines := make([]string, 0, len(r.Entries)*2)
	for _, e := range r.Entries {
		st := StatusStyle(e.Status)
		lines = append(lines, st.Render(Icon(e.Status)+" "+e.Description))
		if verbose && e.Detail != "" {
			lines = append(lines, DetailStyle.Render(e.Detail))
		}
	}
	return ListStyle.Render(strings.Join(lines, "\n"))
}

// Summary is the one-line verdict shown after a validation.
func Summary(r validator.Report) string {
	m := MessagesFor(r.Locale)
	if r.Passed() {
		return StatusStyle(checks.Success).Render(m.Valid)
	}
	return StatusStyle(checks.Error).Render(m.Invalid)
}

func Text(w io.Writer, r validator.Report, verbose bool) error {
	m := MessagesFor(r.Locale)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		HeadingStyle.Render(m.Requirements),
		Checklist(r, verbose),
		Summary(r),
	)
	return err
}

// FileResult is one validated file in machine-readable output.
type FileResult struct {
	validator.Report `yaml:",inline"`
	Passed           bool   `json:"passed" yaml:"passed"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
}

type Document struct {
	Files []FileResult `json:"files" yaml:"files"`
}

func NewFileResult(r validator.Report) FileResult {
	return FileResult{Report: r, Passed: r.Passed()}
}

// FailedFile records a file that could not be validated at all.
func FailedFile(path string, err error) FileResult {
	return FileResult{Report: validator.Report{FileName: path}, Error: err.Error()}
}

func JSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func YAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
