package list

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/boil/pkg/style"
	"github.com/arthur-debert/boil/pkg/types"
	"github.com/arthur-debert/boil/pkg/ui"
)

// Render writes the listing in the requested format. JSON and YAML
// carry the full entries plus the directory/file counts; the terminal
// and text renderings show the tree with a summary line.
func Render(w io.Writer, result *types.ListResult, format ui.Format) error {
	switch format {
	case ui.FormatTerminal:
		return renderTerminal(w, result)
	case ui.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case ui.FormatYAML:
		return yaml.NewEncoder(w).Encode(result)
	default:
		return renderText(w, result)
	}
}

func renderTerminal(w io.Writer, result *types.ListResult) error {
	leveled := make(pterm.LeveledList, 0, len(result.Entries)+1)
	leveled = append(leveled, pterm.LeveledListItem{
		Level: 0,
		Text:  style.TitleStyle.Render(result.Root),
	})
	for _, entry := range result.Entries {
		text := filepath.Base(entry.Path)
		if entry.IsDir {
			text = style.PathStyle.Render(text)
		}
		leveled = append(leveled, pterm.LeveledListItem{Level: entry.Depth, Text: text})
	}

	tree, err := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(leveled)).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, tree); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, style.MutedStyle.Render(summary(result)))
	return err
}

func renderText(w io.Writer, result *types.ListResult) error {
	if _, err := fmt.Fprintln(w, result.Root); err != nil {
		return err
	}
	for _, entry := range result.Entries {
		name := filepath.Base(entry.Path)
		if entry.IsDir {
			name += "/"
		}
		indent := strings.Repeat("  ", entry.Depth-1)
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, summary(result))
	return err
}

func summary(result *types.ListResult) string {
	return fmt.Sprintf("%d directories, %d files", result.Dirs, result.Files)
}
