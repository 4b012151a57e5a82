package validator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StringReader serves content that is already in memory.
func StringReader(s string) ContentReader {
	return func(context.Context) (string, error) { return s, nil }
}

// FileReader reads the whole file from fsys and decodes it as text. A UTF-8
// BOM is dropped, a UTF-16 BOM switches the decoder, and invalid UTF-8
// sequences become U+FFFD.
func FileReader(fsys afero.Fs, path string) ContentReader {
	return func(ctx context.Context) (string, error) {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return Decode(data)
	}
}

func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

// ValidateFile validates the file at path, naming the report after its base name.
func (v *Validator) ValidateFile(ctx context.Context, fsys afero.Fs, path string) Report {
	return v.Validate(ctx, filepath.Base(path), FileReader(fsys, path))
}

func ValidateFile(ctx context.Context, fsys afero.Fs, path string) Report {
	return defaultValidator.ValidateFile(ctx, fsys, path)
}

// CheckPath reports why path cannot be validated at all, if it cannot.
func CheckPath(fsys afero.Fs, fp string) error {
	if fp == "" {
		return fmt.Errorf("file path is required")
	}
	info, err := fsys.Stat(fp)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("file not found: %s", fp)
		case errors.Is(err, fs.ErrPermission):
			return fmt.Errorf("permission denied: %s", fp)
		default:
			return fmt.Errorf("file not accessible: %w", err)
		}
	}
	if info.IsDir() {
		return fmt.Errorf("path points to a directory: %s", fp)
	}
	f, err := fsys.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s", fp)
		}
		return fmt.Errorf("file is not readable: %w", err)
	}
	_ = f.Close()
	return nil
}
