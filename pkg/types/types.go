// Package types holds the value types and capability interfaces that
// flow between the dispatcher, the actions, and their collaborators.
package types

// ParsedOptions is the immutable result of dispatching a normalized
// argument stream. Each command selection is recorded independently so
// that the precedence over simultaneously-set commands stays
// observable; SelectCommand reduces them to exactly one action.
type ParsedOptions struct {
	Help    bool
	Version bool
	Debug   bool

	// MaxDepth limits listing depth; 0 means unbounded.
	MaxDepth int

	// Output is the requested output format name; empty means "use the
	// configured default".
	Output string

	DryRun bool
	Force  bool
	Render bool

	List       bool
	ListSubdir string

	Generate       bool
	GenerateSource string
	GenerateDest   string

	Preview       bool
	PreviewSource string

	Edit       bool
	EditSource string
}

// CommandKind tags the Command variant.
type CommandKind int

const (
	CmdHelp CommandKind = iota
	CmdVersion
	CmdList
	CmdGenerate
	CmdEdit
	CmdPreview
)

// String returns the user-facing name of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdHelp:
		return "help"
	case CmdVersion:
		return "version"
	case CmdList:
		return "list"
	case CmdGenerate:
		return "generate"
	case CmdEdit:
		return "edit"
	case CmdPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Command is the single action selected for an invocation. It is
// produced once from ParsedOptions and consumed once by the action
// selector.
type Command struct {
	Kind        CommandKind
	Subdir      string // List only
	Source      string // Generate, Preview, Edit
	Destination string // Generate only
}

// SelectCommand reduces the options to exactly one Command using the
// fixed precedence help > version > list > generate > edit > preview.
// With nothing selected the default is an unfiltered list.
func (o ParsedOptions) SelectCommand() Command {
	switch {
	case o.Help:
		return Command{Kind: CmdHelp}
	case o.Version:
		return Command{Kind: CmdVersion}
	case o.List:
		return Command{Kind: CmdList, Subdir: o.ListSubdir}
	case o.Generate:
		return Command{Kind: CmdGenerate, Source: o.GenerateSource, Destination: o.GenerateDest}
	case o.Edit:
		return Command{Kind: CmdEdit, Source: o.EditSource}
	case o.Preview:
		return Command{Kind: CmdPreview, Source: o.PreviewSource}
	default:
		return Command{Kind: CmdList}
	}
}

// TreeEntry is one listed path under the boilerplates root.
type TreeEntry struct {
	// Path is relative to the listing root.
	Path  string `json:"path" yaml:"path"`
	Depth int    `json:"depth" yaml:"depth"`
	IsDir bool   `json:"dir" yaml:"dir"`
}

// ListResult is the outcome of walking a boilerplates tree.
type ListResult struct {
	Root    string      `json:"root" yaml:"root"`
	Entries []TreeEntry `json:"entries" yaml:"entries"`
	Dirs    int         `json:"directories" yaml:"directories"`
	Files   int         `json:"files" yaml:"files"`
}

// CopiedFile records one file placed (or, in dry-run mode, one file
// that would be placed) by generate.
type CopiedFile struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// GenerateResult is the outcome of a generate invocation.
type GenerateResult struct {
	Source      string       `json:"source" yaml:"source"`
	Destination string       `json:"destination" yaml:"destination"`
	Copied      []CopiedFile `json:"copied" yaml:"copied"`
	DryRun      bool         `json:"dry_run" yaml:"dry_run"`
}

// CopyOptions tunes a FileCopier run.
type CopyOptions struct {
	// Force overwrites existing files without prompting.
	Force bool
	// DryRun records the would-be copies without touching the filesystem.
	DryRun bool
}

// DirectoryLister walks a directory tree into TreeEntries.
type DirectoryLister interface {
	List(root string, maxDepth int) (*ListResult, error)
}

// FileCopier performs the recursive, interactive copy behind generate.
type FileCopier interface {
	Copy(src, dst string, opts CopyOptions) (*GenerateResult, error)
}

// Prompter asks the user to confirm overwriting an existing file.
type Prompter interface {
	ConfirmOverwrite(path string) (bool, error)
}

// EditorLauncher hands a path to an external editor and blocks until
// the editor exits.
type EditorLauncher interface {
	Launch(editor, path string) error
}
