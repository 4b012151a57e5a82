package checks

import (
	"fmt"
	"path/filepath"
	"strings"
)

type ensureCSV struct{}

func (ensureCSV) ID() ID             { return CSVExtension }
func (ensureCSV) NeedsContent() bool { return false }
func (ensureCSV) FailFast() bool     { return false }
func (ensureCSV) Priority() int      { return 1 }

func (ensureCSV) Run(in Input) Result {
	if strings.HasSuffix(strings.ToLower(in.FileName), ".csv") {
		return Result{ID: CSVExtension, Status: Success, Detail: "file extension OK: .csv"}
	}
	ext := filepath.Ext(in.FileName)
	if ext == "" {
		ext = "(none)"
	}
	return Result{
		ID:     CSVExtension,
		Status: Error,
		Detail: fmt.Sprintf("invalid file extension: %s (expected .csv)", ext),
	}
}

func init() { Register(ensureCSV{}) }
