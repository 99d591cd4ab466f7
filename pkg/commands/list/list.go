// Package list implements the list action: walk the resolved
// boilerplates tree and render it in the selected output format.
package list

import (
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/paths"
	"github.com/arthur-debert/boil/pkg/types"
)

// Options defines the options for the List command.
type Options struct {
	// Root is the resolved boilerplates path.
	Root string

	// Subdir optionally narrows the listing to one subdirectory.
	Subdir string

	// MaxDepth limits the listed depth; 0 means unbounded.
	MaxDepth int

	// Lister walks the tree.
	Lister types.DirectoryLister
}

// List walks the boilerplates tree.
func List(opts Options) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")

	root := opts.Root
	if opts.Subdir != "" {
		root = paths.Boilerplate(root, opts.Subdir)
	}

	log.Debug().
		Str("root", root).
		Int("maxDepth", opts.MaxDepth).
		Msg("listing boilerplates")
	return opts.Lister.List(root, opts.MaxDepth)
}
