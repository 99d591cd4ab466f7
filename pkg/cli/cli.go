// Package cli wires an invocation end to end: normalize the argument
// vector, dispatch it into options, and run the single selected
// action against the resolved boilerplates path.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/boil/internal/version"
	boilargs "github.com/arthur-debert/boil/pkg/args"
	"github.com/arthur-debert/boil/pkg/commands/edit"
	"github.com/arthur-debert/boil/pkg/commands/generate"
	"github.com/arthur-debert/boil/pkg/commands/list"
	"github.com/arthur-debert/boil/pkg/commands/preview"
	"github.com/arthur-debert/boil/pkg/config"
	"github.com/arthur-debert/boil/pkg/dispatch"
	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/fsops"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/paths"
	"github.com/arthur-debert/boil/pkg/style"
	"github.com/arthur-debert/boil/pkg/types"
	"github.com/arthur-debert/boil/pkg/ui"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// App bundles the streams and capabilities an invocation runs against.
// Tests substitute fakes; New wires the production implementations.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	Lister   types.DirectoryLister
	Copier   types.FileCopier
	Launcher types.EditorLauncher
}

// New returns an App wired to the real terminal and filesystem. The
// overwrite prompt goes to stderr so piped stdout stays clean.
func New() *App {
	app := &App{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Lister:   fsops.NewWalker(),
		Launcher: edit.NewExecLauncher(),
	}
	app.Copier = fsops.NewCopier(ui.NewConsolePrompter(app.Stdin, app.Stderr))
	return app
}

// Run executes one invocation and returns its exit code. argv is the
// full argument vector including the program name.
func (a *App) Run(argv []string) int {
	prog := "boil"
	var raw []string
	if len(argv) > 0 {
		prog = filepath.Base(argv[0])
		raw = argv[1:]
	}

	opts, err := dispatch.Parse(boilargs.Normalize(raw))
	if err != nil {
		a.fail(err)
		return ExitError
	}

	logging.SetupLogger(opts.Debug)
	log := logging.GetLogger("cli")

	cfg, err := config.Load()
	if err != nil {
		a.fail(err)
		return ExitError
	}

	// Flags win over configured defaults.
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = cfg.Level
	}
	formatName := opts.Output
	if formatName == "" {
		formatName = cfg.Output
	}
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		a.fail(errors.Wrapf(err, errors.ErrConfigLoad, "invalid output format %q", formatName))
		return ExitError
	}
	if format == ui.FormatAuto {
		format = a.detectFormat()
	}

	cmd := opts.SelectCommand()
	log.Debug().
		Stringer("command", cmd.Kind).
		Str("format", format.String()).
		Msg("dispatching")

	switch cmd.Kind {
	case types.CmdHelp:
		fmt.Fprintf(a.Stdout, usageText, prog)
		return ExitOK

	case types.CmdVersion:
		a.printVersion(prog)
		return ExitOK

	case types.CmdList:
		result, err := list.List(list.Options{
			Root:     paths.Resolve(),
			Subdir:   cmd.Subdir,
			MaxDepth: maxDepth,
			Lister:   a.Lister,
		})
		if err != nil {
			a.fail(err)
			return ExitError
		}
		if err := list.Render(a.Stdout, result, format); err != nil {
			a.fail(err)
			return ExitError
		}
		return ExitOK

	case types.CmdGenerate:
		result, err := generate.Generate(generate.Options{
			Root:        paths.Resolve(),
			Source:      cmd.Source,
			Destination: cmd.Destination,
			Force:       opts.Force,
			DryRun:      opts.DryRun,
			Copier:      a.Copier,
		})
		if err != nil {
			a.fail(err)
			return ExitError
		}
		a.printGenerated(result, format)
		return ExitOK

	case types.CmdEdit:
		editor := os.Getenv(paths.EnvEditor)
		if editor == "" {
			editor = cfg.Editor
		}
		err := edit.Edit(edit.Options{
			Root:     paths.Resolve(),
			Source:   cmd.Source,
			Editor:   editor,
			Launcher: a.Launcher,
		})
		if err != nil {
			a.fail(err)
			return ExitError
		}
		return ExitOK

	case types.CmdPreview:
		err := preview.Preview(preview.Options{
			Root:   paths.Resolve(),
			Source: cmd.Source,
			Render: opts.Render,
			Out:    a.Stdout,
		})
		if err != nil {
			a.fail(err)
			return ExitError
		}
		return ExitOK
	}

	// Unreachable: SelectCommand always returns a known kind.
	a.fail(errors.Newf(errors.ErrInternal, "unhandled command %s", cmd.Kind))
	return ExitError
}

// fail prints the failure line to stderr. A terminal gets the styled
// error indicator; piped stderr keeps the plain glyph.
func (a *App) fail(err error) {
	prefix := MsgErrorPrefix
	if f, ok := a.Stderr.(*os.File); ok && ui.DetectFormat(f) == ui.FormatTerminal {
		prefix = style.ErrorIndicator
	}
	fmt.Fprintf(a.Stderr, "%s %s\n", prefix, err)
}

func (a *App) printVersion(prog string) {
	fmt.Fprintf(a.Stdout, "%s version %s", prog, version.Version)
	if version.Commit != "unknown" {
		fmt.Fprintf(a.Stdout, " (%s, built %s)", version.Commit, version.Date)
	}
	fmt.Fprintln(a.Stdout)
}

func (a *App) printGenerated(result *types.GenerateResult, format ui.Format) {
	marker := MsgCopiedMarker
	if format == ui.FormatTerminal {
		marker = style.SuccessIndicator
	}
	for _, f := range result.Copied {
		fmt.Fprintf(a.Stdout, MsgCopiedFormat, marker, f.Source, f.Destination)
	}
	if result.DryRun {
		notice := MsgDryRunNotice
		if format == ui.FormatTerminal {
			notice = style.WarningIndicator + " " + style.WarningStyle.Render(MsgDryRunNotice)
		}
		fmt.Fprintf(a.Stdout, "\n%s\n", notice)
	}
}

// detectFormat resolves FormatAuto. Only a real file can be probed for
// terminal capabilities; anything else renders as plain text.
func (a *App) detectFormat() ui.Format {
	if f, ok := a.Stdout.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}
