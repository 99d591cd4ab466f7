// Package testutil provides the small fixtures and fakes shared by
// boil's tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempBoilerplates materializes the given relative-path to contents
// map under a fresh temp directory and returns its path. Keys ending
// in "/" create empty directories.
func TempBoilerplates(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("mkdir %s: %v", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}

// Chdir switches into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// ScriptedPrompter answers overwrite prompts from a fixed list and
// records what it was asked. Once the answers run out it declines.
// It implements types.Prompter.
type ScriptedPrompter struct {
	Answers []bool
	Asked   []string
}

func (p *ScriptedPrompter) ConfirmOverwrite(path string) (bool, error) {
	p.Asked = append(p.Asked, path)
	if len(p.Answers) == 0 {
		return false, nil
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// RecordingLauncher records editor invocations instead of exec'ing
// anything. It implements types.EditorLauncher.
type RecordingLauncher struct {
	Editor string
	Path   string
	Err    error
}

func (l *RecordingLauncher) Launch(editor, path string) error {
	l.Editor = editor
	l.Path = path
	return l.Err
}
