// Package edit implements the edit action: open a boilerplate in the
// user's editor and block until the editor exits.
package edit

import (
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/paths"
	"github.com/arthur-debert/boil/pkg/types"
)

// Options defines the options for the Edit command.
type Options struct {
	// Root is the resolved boilerplates path.
	Root string

	// Source is the boilerplate path relative to Root.
	Source string

	// Editor is the editor command; $EDITOR wins over the configured
	// fallback at the call site. An empty command fails when exec'd.
	Editor string

	// Launcher runs the editor.
	Launcher types.EditorLauncher
}

// Edit hands Root/Source to the editor and blocks until it exits.
func Edit(opts Options) error {
	log := logging.GetLogger("commands.edit")

	src := paths.Boilerplate(opts.Root, opts.Source)
	log.Debug().
		Str("source", src).
		Str("editor", opts.Editor).
		Msg("opening editor")

	if err := opts.Launcher.Launch(opts.Editor, src); err != nil {
		return errors.Wrapf(err, errors.ErrEditor, "editor failed for %s", src)
	}
	return nil
}

// ExecLauncher launches the editor as a child process with the
// terminal's standard streams attached. It implements
// types.EditorLauncher.
type ExecLauncher struct{}

// NewExecLauncher creates the production editor launcher.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch blocks until the editor exits. The editor value may carry
// arguments ("code -w"), so it is split on whitespace.
func (l *ExecLauncher) Launch(editor, path string) error {
	fields := strings.Fields(editor)
	name := ""
	var extra []string
	if len(fields) > 0 {
		name = fields[0]
		extra = fields[1:]
	}

	cmd := exec.Command(name, append(extra, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
