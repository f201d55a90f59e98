// Package discovery enumerates candidate pipeline logs under a root
// directory and supplies their raw content to the aggregation core.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/farcloser/primordium/fault"

	"github.com/ousamg/vcqc/internal/types"
)

// Discover walks root and returns the files whose base name matches any of
// the given globs, bodies included, sorted lexicographically by path. The
// ordering is imposed here so downstream duplicate-overwrite semantics are
// reproducible.
func Discover(root string, patterns []string) ([]types.File, error) {
	var files []types.File

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		if !matches(filepath.Base(path), patterns) {
			return nil
		}

		body, readErr := os.ReadFile(path) //nolint:gosec // walking a user-specified tree
		if readErr != nil {
			return fmt.Errorf("%w: %w", fault.ErrReadFailure, readErr)
		}

		files = append(files, types.File{Path: path, Body: body})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %q: %w", root, err)
	}

	slices.SortFunc(files, func(a, b types.File) int {
		return strings.Compare(a.Path, b.Path)
	})

	return files, nil
}

func matches(name string, patterns []string) bool {
	for _, pattern := range patterns {
		// Bad patterns only ever return ErrBadPattern; treat as no match.
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
