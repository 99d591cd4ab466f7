package cli

// Short messages and output fragments
const (
	// MsgErrorPrefix marks every failure line on stderr.
	MsgErrorPrefix = "✗"

	// MsgCopiedMarker marks a generated file in plain output; terminal
	// output swaps in the styled success indicator.
	MsgCopiedMarker = "+"

	MsgCopiedFormat = "%s %s -> %s\n"

	// MsgDryRunNotice trails the copy report; terminal output adds the
	// warning indicator and styling.
	MsgDryRunNotice = "DRY RUN MODE - No files were written"
)

// usageText is the static help output; %[1]s is the program name.
const usageText = `%[1]s - a boilerplate manager

USAGE:
    %[1]s [options] [command]

COMMANDS:
    list, ls, l [subdir]        List boilerplates, optionally under subdir
    generate, g <src> [dest]    Copy boilerplate src to dest (default: current directory)
    preview, p <src>            Print a boilerplate's contents
    edit, e <src>               Open a boilerplate in your editor

OPTIONS:
    -h, --help            Show this message
    -v, --version         Show version
    -L, --level <n>       Limit listing depth to n levels
    -o, --output <fmt>    Output format: auto, term, text, json, yaml
    -f, --force           Overwrite without prompting (generate)
        --dry-run         Show what generate would copy, without copying
        --render          Render Markdown previews for the terminal
        --debug           Enable debug logging

EXAMPLES:
    %[1]s ls
    %[1]s -L 2 ls licenses
    %[1]s generate files/file.txt new-file.txt
    %[1]s preview README.md

BOILERPLATES PATH:
    The first match wins:
      1. $BOILERPLATES_PATH
      2. ./.boilerplates/
      3. ./boilerplates/
      4. ~/.boilerplates/
      5. ~/boilerplates/
`
