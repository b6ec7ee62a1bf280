package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"task-tracker/internal/task/repository"
	pkgLog "task-tracker/pkg/log"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type implStorage struct {
	fs   afero.Fs
	path string
	l    pkgLog.Logger
}

// New creates a line-file Storage at path on fs. Pass afero.NewOsFs() in
// production and afero.NewMemMapFs() in tests.
func New(fs afero.Fs, path string, l pkgLog.Logger) repository.Storage {
	return &implStorage{
		fs:   fs,
		path: path,
		l:    l,
	}
}

func (s *implStorage) Load(ctx context.Context) ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		s.l.Warnf(ctx, "file storage: read %s: %v", s.path, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrLoad, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return []string{}, nil
	}
	lines := strings.Split(content, "\n")
	s.l.Debugf(ctx, "file storage: loaded %d lines from %s", len(lines), s.path)
	return lines, nil
}

// Save writes every line to a temporary file and renames it over the store, so a
// failed write never leaves a half-written file behind.
func (s *implStorage) Save(ctx context.Context, lines []string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("file storage: create dir: %w", err)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(b.String()), filePerm); err != nil {
		return fmt.Errorf("file storage: write temp file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("file storage: replace %s: %w", s.path, err)
	}

	s.l.Debugf(ctx, "file storage: saved %d lines to %s", len(lines), s.path)
	return nil
}
