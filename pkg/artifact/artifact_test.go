package artifact

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	vcerrors "github.com/matzehuels/vitalchart/pkg/errors"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")

	if err := Write(path, []byte("first version")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := Write(path, []byte("second")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("file = %q, want overwritten content %q", got, "second")
	}
}

func TestWriteCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "chart.html")
	if err := Write(path, []byte("x")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat() error: %v", err)
	}
}

func TestWriteUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// A regular file cannot be used as a directory.
	err := Write(filepath.Join(blocker, "chart.html"), []byte("x"))
	if !vcerrors.Is(err, vcerrors.ErrCodeIO) {
		t.Errorf("Write() error = %v, want IO_ERROR", err)
	}
}

func TestWriteInvalidPath(t *testing.T) {
	err := Write("", []byte("x"))
	if !vcerrors.Is(err, vcerrors.ErrCodeInvalidPath) {
		t.Errorf("Write() error = %v, want INVALID_PATH", err)
	}
}

func TestWriteFunc(t *testing.T) {
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(dir, "ok.html")
		n, err := WriteFunc(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "hello")
			return err
		})
		if err != nil {
			t.Fatalf("WriteFunc() error: %v", err)
		}
		if n != 5 {
			t.Errorf("n = %d, want 5", n)
		}
	})

	t.Run("render failure leaves no file", func(t *testing.T) {
		path := filepath.Join(dir, "failed.html")
		renderErr := errors.New("boom")
		_, err := WriteFunc(path, func(w io.Writer) error {
			io.WriteString(w, "partial")
			return renderErr
		})
		if !errors.Is(err, renderErr) {
			t.Fatalf("WriteFunc() error = %v, want %v", err, renderErr)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file should not exist, Stat() error = %v", err)
		}
	})
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := Describe(tt.n); got != tt.want {
			t.Errorf("Describe(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
