package validator

import (
	"golang.org/x/text/language"

	"github.com/bodrovis/csv-import-guard/internal/checks"
)

// Entry is the state of one check inside a Report.
type Entry struct {
	ID          checks.ID     `json:"check" yaml:"check"`
	Status      checks.Status `json:"status" yaml:"status"`
	Description string        `json:"description" yaml:"description"`
	Detail      string        `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report holds one entry per check in declaration order. Reports are values:
// each validation builds a new one.
type Report struct {
	FileName string       `json:"file" yaml:"file"`
	Locale   language.Tag `json:"locale" yaml:"locale"`
	Entries  []Entry      `json:"checks" yaml:"checks"`
}

// NewReport returns a report with every check pending.
func NewReport(fileName string, locale language.Tag) Report {
	locale = checks.MatchLocale(locale)
	ids := checks.IDs()
	r := Report{
		FileName: fileName,
		Locale:   locale,
		Entries:  make([]Entry, len(ids)),
	}
	for i, id := range ids {
		r.Entries[i] = Entry{ID: id, Status: checks.Pending, Description: checks.Describe(id, locale)}
	}
	return r
}

// Reset returns an all-pending report in the same locale, detached from any
// file. r itself is left untouched.
func (r Report) Reset() Report {
	return NewReport("", r.Locale)
}

func (r Report) Status(id checks.ID) checks.Status {
	if e, ok := r.entry(id); ok {
		return e.Status
	}
	return checks.Pending
}

func (r Report) Entry(id checks.ID) (Entry, bool) {
	return r.entry(id)
}

func (r Report) entry(id checks.ID) (Entry, bool) {
	for _, e := range r.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Passed reports whether every check succeeded; importing is allowed only then.
func (r Report) Passed() bool {
	if len(r.Entries) == 0 {
		return false
	}
	for _, e := range r.Entries {
		if e.Status != checks.Success {
			return false
		}
	}
	return true
}

// Resolved reports whether no check is pending.
func (r Report) Resolved() bool {
	for _, e := range r.Entries {
		if e.Status == checks.Pending {
			return false
		}
	}
	return true
}

func (r Report) Counts() (success, failed, pending int) {
	for _, e := range r.Entries {
		switch e.Status {
		case checks.Success:
			success++
		case checks.Error:
			failed++
		default:
			pending++
		}
	}
	return success, failed, pending
}

// set is used while a report is being built; entries is owned by the builder.
func (r *Report) set(res checks.Result) {
	for i := range r.Entries {
		if r.Entries[i].ID == res.ID {
			r.Entries[i].Status = res.Status
			r.Entries[i].Detail = res.Detail
			return
		}
	}
}

// resolvePending turns every still pending entry into an error.
func (r *Report) resolvePending(detail string) {
	for i := range r.Entries {
		if r.Entries[i].Status == checks.Pending {
			r.Entries[i].Status = checks.Error
			r.Entries[i].Detail = detail
		}
	}
}
