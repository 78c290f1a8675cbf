package filestorage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/benho/store-management/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FileStorage persists opaque blobs under a single flat directory. Stored
// names are generated tokens, never caller-supplied paths.
type FileStorage interface {
	Save(content []byte, originalName string) (string, error)
	Load(name string) ([]byte, error)
	Delete(name string)
}

type DiskStorage struct {
	root string
}

func CreateNewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

func (s *DiskStorage) Save(content []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
		return "", errs.ErrFileStorage
	}

	name := uuid.New().String() + extension(originalName)
	if err := os.WriteFile(filepath.Join(s.root, name), content, 0o644); err != nil {
		log.Error().Err(err).Str("component", "Save").Str("file", name).Msg("")
		return "", errs.ErrFileStorage
	}

	return name, nil
}

func (s *DiskStorage) Load(name string) ([]byte, error) {
	if !validName(name) {
		return nil, errs.ErrFileNotFound
	}

	content, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.ErrFileNotFound
		}
		log.Error().Err(err).Str("component", "Load").Str("file", name).Msg("")
		return nil, errs.ErrFileStorage
	}

	return content, nil
}

// Delete is best-effort: a missing file is a no-op and I/O failures are
// logged without being returned, so callers never abort on photo cleanup.
func (s *DiskStorage) Delete(name string) {
	if !validName(name) {
		return
	}

	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Error().Err(err).Str("component", "Delete").Str("file", name).Msg("")
	}
}

// extension returns the suffix of the original name from its last dot,
// verbatim, or an empty string when there is none. Suffixes that would not
// survive the stored-name checks in Load and Delete are dropped so every
// saved name stays loadable.
func extension(originalName string) string {
	base := filepath.Base(originalName)
	if base == "." || base == ".." {
		return ""
	}

	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}

	ext := base[idx:]
	if strings.Contains(ext, "..") || strings.ContainsAny(ext, `/\`) {
		return ""
	}

	return ext
}

func validName(name string) bool {
	return name != "" && !strings.Contains(name, "..") && !strings.ContainsAny(name, `/\`)
}
