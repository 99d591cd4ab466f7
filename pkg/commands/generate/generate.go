// Package generate implements the generate action: copy a boilerplate
// to a destination with interactive overwrite confirmation.
package generate

import (
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/paths"
	"github.com/arthur-debert/boil/pkg/types"
)

// Options defines the options for the Generate command.
type Options struct {
	// Root is the resolved boilerplates path.
	Root string

	// Source is the boilerplate path relative to Root.
	Source string

	// Destination receives the copy; empty means the current directory.
	Destination string

	// Force overwrites existing files without prompting.
	Force bool

	// DryRun reports the would-be copies without touching the filesystem.
	DryRun bool

	// Copier performs the copy.
	Copier types.FileCopier
}

// Generate copies the boilerplate at Root/Source to the destination.
func Generate(opts Options) (*types.GenerateResult, error) {
	log := logging.GetLogger("commands.generate")

	src := paths.Boilerplate(opts.Root, opts.Source)
	dst := opts.Destination
	if dst == "" {
		dst = "."
	}

	log.Debug().
		Str("source", src).
		Str("destination", dst).
		Bool("dryRun", opts.DryRun).
		Msg("generating boilerplate")
	return opts.Copier.Copy(src, dst, types.CopyOptions{Force: opts.Force, DryRun: opts.DryRun})
}
