// Package preview implements the preview action: stream a
// boilerplate's raw bytes to the output, optionally rendering Markdown
// for the terminal.
package preview

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/paths"
)

// Options defines the options for the Preview command.
type Options struct {
	// Root is the resolved boilerplates path.
	Root string

	// Source is the boilerplate path relative to Root.
	Source string

	// Render formats Markdown sources for the terminal. Without it the
	// output is always the raw bytes, so piping stays byte-exact.
	Render bool

	// Out receives the preview.
	Out io.Writer
}

// Preview streams the boilerplate at Root/Source to Out.
func Preview(opts Options) error {
	log := logging.GetLogger("commands.preview")

	src := paths.Boilerplate(opts.Root, opts.Source)
	log.Debug().
		Str("source", src).
		Bool("render", opts.Render).
		Msg("previewing boilerplate")

	if opts.Render && isMarkdown(src) {
		return renderMarkdown(src, opts.Out)
	}

	f, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "cannot preview %s", src)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(opts.Out, f); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}
	return nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func renderMarkdown(path string, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "cannot preview %s", path)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot create markdown renderer")
	}

	rendered, err := renderer.Render(string(raw))
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot render markdown")
	}

	_, err = io.WriteString(out, rendered)
	return err
}
