package outfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/domgen/internal/errors"
)

// DiskSink writes files below a local directory.
type DiskSink struct {
	dir string
}

// NewDiskSink creates a DiskSink. An empty dir resolves names against the
// working directory.
func NewDiskSink(dir string) *DiskSink {
	return &DiskSink{dir: dir}
}

// Write writes data to dir/name through a temporary file, so readers never
// see a partially written file.
func (s *DiskSink) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := name
	if s.dir != "" {
		path = filepath.Join(s.dir, name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", writeError(path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".domgen-*")
	if err != nil {
		return "", writeError(path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", writeError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", writeError(path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", writeError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", writeError(path, err)
	}
	return path, nil
}

func writeError(location string, err error) error {
	return errors.New("E160").WithDetailf("%s: %v", location, err).Wrap(err)
}
