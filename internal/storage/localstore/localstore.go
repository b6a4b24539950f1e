// Package localstore resolves image URIs to local paths and replaces files on disk
package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/google/uuid"
)

const (
	SchemePublic    = "public"
	SchemePrivate   = "private"
	SchemeTemporary = "temporary"
)

type Dirs struct {
	Public    string
	Private   string
	Temporary string
}

type LocalStore struct {
	roots map[string]string
}

func New(d Dirs) *LocalStore {
	roots := make(map[string]string, 3)
	for scheme, dir := range map[string]string{
		SchemePublic:    d.Public,
		SchemePrivate:   d.Private,
		SchemeTemporary: d.Temporary,
	} {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			log.Printf("Skipping %q root %q: %v", scheme, dir, err)
			continue
		}
		roots[scheme] = abs
	}
	return &LocalStore{roots: roots}
}

// Realpath maps scheme://path onto its configured root; plain paths are made absolute.
func (s *LocalStore) Realpath(_ context.Context, uri string) (string, error) {
	if uri == "" {
		return "", model.ErrEmptyURI
	}

	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return filepath.Abs(uri)
	}

	root, found := s.roots[scheme]
	if !found {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownScheme, scheme)
	}

	p := filepath.Join(root, filepath.FromSlash(rest))
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", model.ErrOutsideRoot, uri)
	}

	return p, nil
}

// SaveData writes data next to the target and renames it into place,
// so the target holds either the old bytes or the new ones.
func (s *LocalStore) SaveData(ctx context.Context, data []byte, uri string, mode model.WriteMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.Realpath(ctx, uri)
	if err != nil {
		return err
	}

	perm := fs.FileMode(0o644)
	info, err := os.Stat(target)
	switch {
	case err == nil:
		if mode == model.FailIfExists {
			return fmt.Errorf("%w: %q", model.ErrFileExists, target)
		}
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, perm); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if mode == model.FailIfExists {
		// link не перезаписывает существующий файл, в отличие от rename
		err = os.Link(tmp, target)
		removeTemp(tmp)
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %q", model.ErrFileExists, target)
		}
		return err
	}

	if err := os.Rename(tmp, target); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("failed to move temp file into place: %w", err)
	}
	return nil
}

func removeTemp(p string) {
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("Failed to remove temp file:", err)
	}
}
