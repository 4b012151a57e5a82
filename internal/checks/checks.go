package checks

import (
	"fmt"
	"sort"
)

// ID names one of the fixed validation checks.
type ID string

const (
	CSVExtension       ID = "isCSVExtension"
	NotEmpty           ID = "isNotEmpty"
	NoEmptyRows        ID = "hasNoEmptyRows"
	SemicolonSeparator ID = "hasSemicolonSeparator"
)

// IDs returns the check identifiers in declaration order.
func IDs() []ID {
	return []ID{CSVExtension, NotEmpty, NoEmptyRows, SemicolonSeparator}
}

type Status int

const (
	Pending Status = iota
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case Pending, Success, Error:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown status %d", int(s))
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pending":
		*s = Pending
	case "success":
		*s = Success
	case "error":
		*s = Error
	default:
		return fmt.Errorf("unknown status %q", string(b))
	}
	return nil
}

// Input is what a check sees. Content is already line-ending normalized.
type Input struct {
	FileName string
	Content  string
}

type Result struct {
	ID     ID
	Status Status
	Detail string
}

type Check interface {
	ID() ID
	Run(in Input) Result
	// If true, Run inspects Input.Content and the file must be read first.
	NeedsContent() bool
	// If true, a non-success result resolves every remaining check to Error.
	FailFast() bool
	// Less number -> higher priority
	Priority() int
}

// Global registry of checks.
var All []Check

func Register(c Check) {
	All = append(All, c)
}

func Sorted() []Check {
	out := make([]Check, len(All))
	copy(out, All)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Priority(), out[j].Priority()
		if pi != pj {
			return pi < pj
		}

		return out[i].ID() < out[j].ID()
	})
	return out
}

func Reset() {
	All = nil
}
