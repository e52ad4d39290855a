package slot

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"mandoob/internal/domain/repository"

	"github.com/pkg/errors"
)

// fileSlot stores one file per key inside a directory. Writes go through a
// temporary file and a rename so a crash never leaves a half-written snapshot.
type fileSlot struct {
	dir string
}

// NewFileSlot creates the directory if needed and returns a file-backed slot.
func NewFileSlot(dir string) (repository.Slot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create slot directory")
	}

	return &fileSlot{dir: dir}, nil
}

// fileName maps a namespaced key like "mandoob:invoices" to a safe file name.
func (s *fileSlot) fileName(key string) string {
	replacer := strings.NewReplacer(":", "_", "/", "_", string(os.PathSeparator), "_")

	return filepath.Join(s.dir, replacer.Replace(key)+".json")
}

func (s *fileSlot) Get(ctx context.Context, key string) (string, error) {
	raw, err := os.ReadFile(s.fileName(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrap(err, "failed to read slot file")
	}

	return string(raw), nil
}

func (s *fileSlot) Set(ctx context.Context, key, value string) error {
	target := s.fileName(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return errors.Wrap(err, "failed to write slot file")
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrap(err, "failed to replace slot file")
	}

	return nil
}

func (s *fileSlot) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.fileName(key)); err != nil {
		if os.IsNotExist(err) {
			return repository.ErrKeyNotFound
		}

		return errors.Wrap(err, "failed to delete slot file")
	}

	return nil
}
