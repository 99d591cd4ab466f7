// Package fsops implements the filesystem collaborators behind the
// actions: the directory walker used by list and the interactive
// recursive copier used by generate.
package fsops

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/types"
)

// vcsGlob matches version-control metadata. Matching entries are
// excluded from listings only, never from copy/preview/edit targeting.
const vcsGlob = "*.git*"

// Walker lists directory trees. It implements types.DirectoryLister.
type Walker struct{}

// NewWalker creates the production directory lister.
func NewWalker() *Walker {
	return &Walker{}
}

// List walks root up to maxDepth levels (0 = unbounded). Hidden
// entries are included; names matching vcsGlob are skipped along with
// their subtrees. Entries come back in lexical order per directory, as
// WalkDir guarantees.
func (w *Walker) List(root string, maxDepth int) (*types.ListResult, error) {
	log := logging.GetLogger("fsops.walker")

	result := &types.ListResult{Root: root}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if matched, _ := filepath.Match(vcsGlob, d.Name()); matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		if maxDepth > 0 && depth > maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		result.Entries = append(result.Entries, types.TreeEntry{
			Path:  rel,
			Depth: depth,
			IsDir: d.IsDir(),
		})
		if d.IsDir() {
			result.Dirs++
		} else {
			result.Files++
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot list %s", root)
	}

	log.Debug().
		Str("root", root).
		Int("entries", len(result.Entries)).
		Msg("walked boilerplates tree")
	return result, nil
}
