package checks

import (
	"fmt"
)

type ensureSemicolon struct{}

func (ensureSemicolon) ID() ID             { return SemicolonSeparator }
func (ensureSemicolon) NeedsContent() bool { return true }
func (ensureSemicolon) FailFast() bool     { return false }
func (ensureSemicolon) Priority() int      { return 4 }

func (ensureSemicolon) Run(in Input) Result {
	dc := CountDelimiters(in.Content)
	fail := func(format string, args ...any) Result {
		return Result{ID: SemicolonSeparator, Status: Error, Detail: fmt.Sprintf(format, args...)}
	}

	switch {
	case dc.Rows == 0:
		return fail("no non-blank rows")
	case dc.Semicolon == 0:
		return fail("no ';' found")
	case dc.Pipe > 0:
		return fail("found %d '|' character(s)", dc.Pipe)
	case dc.Comma > dc.Semicolon:
		return fail("',' appears more often than ';' (%d > %d)", dc.Comma, dc.Semicolon)
	case dc.Tab > dc.Semicolon:
		return fail("TAB appears more often than ';' (%d > %d)", dc.Tab, dc.Semicolon)
	}

	// A semicolon-delimited file shows at least one separator in its first row.
	if dc.FirstRowSemicolons == 0 {
		return fail("first row has no ';'")
	}

	return Result{
		ID:     SemicolonSeparator,
		Status: Success,
		Detail: fmt.Sprintf("';' is the dominant separator (%d across %d row(s))", dc.Semicolon, dc.Rows),
	}
}

func init() { Register(ensureSemicolon{}) }
