package validator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/bodrovis/csv-import-guard/internal/checks"
)

var ErrValidationFailed = errors.New("validation failed")

// ContentReader returns the full text of the file being validated.
type ContentReader func(ctx context.Context) (string, error)

type Validator struct {
	logger *log.Logger
	locale language.Tag
}

type Option func(*Validator)

func WithLogger(l *log.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

func WithLocale(tag language.Tag) Option {
	return func(v *Validator) { v.locale = checks.MatchLocale(tag) }
}

func New(opts ...Option) *Validator {
	v := &Validator{
		logger: log.New(io.Discard),
		locale: checks.Supported[0],
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

var defaultValidator = New()

// Validate runs every check with the default validator.
func Validate(ctx context.Context, fileName string, read ContentReader) Report {
	return defaultValidator.Validate(ctx, fileName, read)
}

func (v *Validator) Locale() language.Tag { return v.locale }

// Validate never fails: read errors and panics end up as Error statuses.
// The content is read at most once, when the first check needing it runs.
func (v *Validator) Validate(ctx context.Context, fileName string, read ContentReader) Report {
	rep := NewReport(fileName, v.locale)

	var (
		in     = checks.Input{FileName: fileName}
		loaded bool
	)

	for _, c := range checks.Sorted() {
		if c.NeedsContent() && !loaded {
			raw, err := safeRead(ctx, read)
			if err != nil {
				v.logger.Warn("cannot read file content", "file", fileName, "err", err)
				rep.resolvePending("file content could not be read")
				return rep
			}
			in.Content = checks.Normalize(raw)
			loaded = true
		}

		res := safeRun(c, in)
		res.ID = c.ID()
		rep.set(res)
		v.logger.Debug("check finished", "file", fileName, "check", res.ID, "status", res.Status, "detail", res.Detail)

		if res.Status != checks.Success && c.FailFast() {
			rep.resolvePending(fmt.Sprintf("skipped after %s failed", c.ID()))
			return rep
		}
	}

	rep.resolvePending("check not run")
	return rep
}

func safeRun(c checks.Check, in checks.Input) (res checks.Result) {
	defer func() {
		if r := recover(); r != nil {
			res.Status = checks.Error
			res.Detail = fmt.Sprintf("check panicked: %v", r)
		}
	}()
	return c.Run(in)
}

func safeRead(ctx context.Context, read ContentReader) (s string, err error) {
	if read == nil {
		return "", errors.New("no content reader")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content reader panicked: %v", r)
		}
	}()
	return read(ctx)
}
