// Package dispatch walks the normalized token stream once, recording
// the global options and at most one recognized subcommand into an
// immutable ParsedOptions value. The first usage error terminates the
// scan.
package dispatch

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/boil/pkg/args"
	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/types"
	"github.com/arthur-debert/boil/pkg/ui"
)

// Parse consumes tokens left to right. Lookahead for a command or
// option argument never consumes a token shaped like an option.
func Parse(tokens []string) (types.ParsedOptions, error) {
	log := logging.GetLogger("dispatch")
	var opts types.ParsedOptions

scan:
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "-h", "--help":
			opts.Help = true

		case "-v", "--version":
			opts.Version = true

		case "--debug":
			opts.Debug = true

		case "--dry-run":
			opts.DryRun = true

		case "-f", "--force":
			opts.Force = true

		case "--render":
			opts.Render = true

		case "-L", "--level":
			value, ok := argument(tokens, i)
			if !ok {
				return opts, errors.Newf(errors.ErrUsage, "option %s requires an argument", tok)
			}
			level, err := strconv.Atoi(value)
			if err != nil || level <= 0 {
				return opts, errors.Newf(errors.ErrUsage, "option %s requires a positive number, got %q", tok, value)
			}
			opts.MaxDepth = level
			i++

		case "-o", "--output":
			value, ok := argument(tokens, i)
			if !ok {
				return opts, errors.Newf(errors.ErrUsage, "option %s requires an argument", tok)
			}
			if _, err := ui.ParseFormat(value); err != nil {
				return opts, errors.Newf(errors.ErrUsage, "option %s: %v", tok, err)
			}
			opts.Output = value
			i++

		case "l", "ls", "list":
			opts.List = true
			if subdir, ok := argument(tokens, i); ok {
				opts.ListSubdir = subdir
				i++
			}

		case "g", "generate":
			opts.Generate = true
			source, ok := argument(tokens, i)
			if !ok {
				return opts, errors.Newf(errors.ErrUsage, "command %s requires a source argument", tok)
			}
			opts.GenerateSource = source
			i++
			if dest, ok := argument(tokens, i); ok {
				opts.GenerateDest = dest
				i++
			}

		case "p", "preview":
			opts.Preview = true
			source, ok := argument(tokens, i)
			if !ok {
				return opts, errors.Newf(errors.ErrUsage, "command %s requires a source argument", tok)
			}
			opts.PreviewSource = source
			i++

		case "e", "edit":
			opts.Edit = true
			source, ok := argument(tokens, i)
			if !ok {
				return opts, errors.Newf(errors.ErrUsage, "command %s requires a source argument", tok)
			}
			opts.EditSource = source
			i++

		case args.EndOfOptions:
			// Everything after the marker is discarded from dispatch.
			break scan

		default:
			if strings.HasPrefix(tok, "-") {
				return opts, errors.Newf(errors.ErrUsage, "unrecognized option: %s", tok)
			}
			log.Debug().Str("token", tok).Msg("ignoring unrecognized argument")
		}
	}

	return opts, nil
}

// argument returns the token after position i when it can serve as an
// argument: present, non-empty, and not shaped like an option.
func argument(tokens []string, i int) (string, bool) {
	if i+1 >= len(tokens) {
		return "", false
	}
	next := tokens[i+1]
	if next == "" || next == args.EndOfOptions || strings.HasPrefix(next, "-") {
		return "", false
	}
	return next, true
}
