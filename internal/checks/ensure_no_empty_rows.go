package checks

import (
	"fmt"
)

type ensureNoEmptyRows struct{}

func (ensureNoEmptyRows) ID() ID             { return NoEmptyRows }
func (ensureNoEmptyRows) NeedsContent() bool { return true }
func (ensureNoEmptyRows) FailFast() bool     { return false }
func (ensureNoEmptyRows) Priority() int      { return 3 }

// Rows are always split on ';' here, whatever separator the file really uses.
func (ensureNoEmptyRows) Run(in Input) Result {
	if line, found := FirstEmptyRow(in.Content); found {
		return Result{
			ID:     NoEmptyRows,
			Status: Error,
			Detail: fmt.Sprintf("empty row at line %d", line),
		}
	}
	return Result{ID: NoEmptyRows, Status: Success, Detail: "no empty rows"}
}

func init() { Register(ensureNoEmptyRows{}) }
