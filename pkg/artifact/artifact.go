// Package artifact writes rendered output documents to disk.
//
// Renderers produce their output in memory first and hand the finished bytes
// to [Write], so a failed render never leaves a partial file behind and the
// file is opened, written and closed within a single call.
package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/vitalchart/pkg/errors"
)

// Write creates or truncates path and writes data to it. Missing parent
// directories are created. Failures are IO_ERROR.
func Write(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

// WriteFunc renders into memory with fn and writes the result to path only
// if fn succeeds.
func WriteFunc(path string, fn func(w io.Writer) error) (int, error) {
	var buf sizedBuffer
	if err := fn(&buf); err != nil {
		return 0, err
	}
	if err := Write(path, buf.data); err != nil {
		return 0, err
	}
	return len(buf.data), nil
}

type sizedBuffer struct{ data []byte }

func (b *sizedBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Describe formats a byte count for log lines, e.g. "4.2 KiB".
func Describe(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
