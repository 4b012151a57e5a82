package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bodrovis/csv-import-guard/internal/app"
	"github.com/bodrovis/csv-import-guard/internal/checks"
	"github.com/bodrovis/csv-import-guard/internal/config"
	"github.com/bodrovis/csv-import-guard/internal/render"
	"github.com/bodrovis/csv-import-guard/pkg/validator"
)

var errOperational = errors.New("one or more files could not be validated due to an error")

func NewCommand(a *app.App) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate one or multiple CSV files",
		Long: `Validate one or multiple CSV files by running all built-in checks.

Example:
  csv-import-guard validate -f contacts.csv
  csv-import-guard validate -f file1.csv,file2.csv
  csv-import-guard validate -f file1.csv -f file2.csv -o json
  csv-import-guard validate file1.csv file2.csv --verbose
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			files = append(files, args...)
			if len(files) == 0 {
				return fmt.Errorf("no files provided: use --files to specify one or more CSV files")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(checks.All) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No checks registered. Nothing to run.")
				return fmt.Errorf("no checks to run")
			}

			switch a.Config.Output {
			case config.OutputJSON, config.OutputYAML:
				return runStructured(cmd.Context(), cmd.OutOrStdout(), a, files)
			default:
				return runText(cmd.Context(), cmd.OutOrStdout(), a, files)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&files, "files", "f", nil, "Path(s) to CSV file(s) to validate (comma-separated or repeatable)")
	flags.StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
	flags.Bool("verbose", false, "Show diagnostic details under each check")
	cobra.CheckErr(a.Viper.BindPFlag("output", flags.Lookup("output")))
	cobra.CheckErr(a.Viper.BindPFlag("verbose", flags.Lookup("verbose")))

	return cmd
}

func runText(ctx context.Context, w io.Writer, a *app.App, files []string) error {
	sep := strings.Repeat("─", 72)

	var hadOpErr bool
	var hadValFail bool
	var filesPassed, filesFailed, filesErrored int

	for i, path := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", sep)
		fmt.Fprintf(w, "Validating: %s%s\n", path, sizeOf(a, path))
		fmt.Fprintf(w, "%s\n\n", sep)

		if err := validator.CheckPath(a.Fs, path); err != nil {
			a.Logger.Warn("Cannot validate file", "path", path, "err", err)
			fmt.Fprintf(w, "ERROR: %v\n", err)
			fmt.Fprintf(w, "%s\n", sep)
			hadOpErr = true
			filesErrored++
			continue
		}

		r := a.Validator.ValidateFile(ctx, a.Fs, path)
		if err := render.Text(w, r, a.Config.Verbose); err != nil {
			return err
		}

		passed, failed, pending := r.Counts()
		fmt.Fprintf(w, "\nSummary for %s: %d passed, %d failed, %d pending\n",
			path, passed, failed, pending)

		if r.Passed() {
			fmt.Fprintln(w, "Result: PASSED")
			filesPassed++
		} else {
			fmt.Fprintln(w, "Result: FAILED")
			filesFailed++
			hadValFail = true
		}

		fmt.Fprintf(w, "%s\n", sep)
	}

	if len(files) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Overall: %d passed, %d failed, %d error(s)\n",
			filesPassed, filesFailed, filesErrored)
	}

	return verdict(hadOpErr, hadValFail)
}

func runStructured(ctx context.Context, w io.Writer, a *app.App, files []string) error {
	var hadOpErr bool
	var hadValFail bool

	doc := render.Document{Files: make([]render.FileResult, 0, len(files))}
	for _, path := range files {
		if err := validator.CheckPath(a.Fs, path); err != nil {
			a.Logger.Warn("Cannot validate file", "path", path, "err", err)
			doc.Files = append(doc.Files, render.FailedFile(path, err))
			hadOpErr = true
			continue
		}

		res := render.NewFileResult(a.Validator.ValidateFile(ctx, a.Fs, path))
		if !res.Passed {
			hadValFail = true
		}
		doc.Files = append(doc.Files, res)
	}

	var err error
	if a.Config.Output == config.OutputYAML {
		err = render.YAML(w, doc)
	} else {
		err = render.JSON(w, doc)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return verdict(hadOpErr, hadValFail)
}

func verdict(hadOpErr, hadValFail bool) error {
	if hadOpErr {
		return errOperational
	}
	if hadValFail {
		return validator.ErrValidationFailed
	}
	return nil
}

func sizeOf(a *app.App, path string) string {
	info, err := a.Fs.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return fmt.Sprintf(" (%s)", humanize.Bytes(uint64(info.Size())))
}
