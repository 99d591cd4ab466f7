// pkg/fsops/copier_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem
// PURPOSE: Test the interactive recursive copy behind generate

package fsops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/fsops"
	"github.com/arthur-debert/boil/pkg/testutil"
	"github.com/arthur-debert/boil/pkg/types"
)

func TestCopySingleFile(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"files/file.txt": "hello\n",
	})
	dst := filepath.Join(t.TempDir(), "new-file.txt")

	copier := fsops.NewCopier(&testutil.ScriptedPrompter{})
	result, err := copier.Copy(filepath.Join(root, "files/file.txt"), dst, types.CopyOptions{})
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got), "round trip must be byte-identical")
	require.Len(t, result.Copied, 1)
	assert.Equal(t, dst, result.Copied[0].Destination)
}

func TestCopyIntoExistingDirectory(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"files/file.txt": "hello\n",
	})
	dstDir := t.TempDir()

	copier := fsops.NewCopier(&testutil.ScriptedPrompter{})
	_, err := copier.Copy(filepath.Join(root, "files/file.txt"), dstDir, types.CopyOptions{})
	require.NoError(t, err)

	// cp semantics: an existing directory destination receives the
	// source under its own base name.
	assert.FileExists(t, filepath.Join(dstDir, "file.txt"))
}

func TestCopyDirectoryRecursive(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"proj/README.md":     "# readme\n",
		"proj/src/main.txt":  "main\n",
		"proj/src/extra.txt": "extra\n",
	})
	dst := filepath.Join(t.TempDir(), "newproj")

	copier := fsops.NewCopier(&testutil.ScriptedPrompter{})
	result, err := copier.Copy(filepath.Join(root, "proj"), dst, types.CopyOptions{})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dst, "README.md"))
	assert.FileExists(t, filepath.Join(dst, "src", "main.txt"))
	assert.FileExists(t, filepath.Join(dst, "src", "extra.txt"))
	assert.Len(t, result.Copied, 3)
}

func TestCopyPreservesMode(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "script.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0755))
	dst := filepath.Join(t.TempDir(), "script.sh")

	copier := fsops.NewCopier(&testutil.ScriptedPrompter{})
	_, err := copier.Copy(src, dst, types.CopyOptions{})
	require.NoError(t, err)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCopyDeclinedOverwriteLeavesDestination(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"files/file.txt": "new contents\n",
	})
	dst := filepath.Join(t.TempDir(), "existing.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old contents\n"), 0644))

	prompter := &testutil.ScriptedPrompter{Answers: []bool{false}}
	copier := fsops.NewCopier(prompter)
	_, err := copier.Copy(filepath.Join(root, "files/file.txt"), dst, types.CopyOptions{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopyRefused))
	assert.Equal(t, []string{dst}, prompter.Asked)

	got, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	assert.Equal(t, "old contents\n", string(got), "declined destination must be unchanged")
}

func TestCopyDeclineAbortsButKeepsEarlierCopies(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"proj/a.txt": "a\n",
		"proj/b.txt": "b\n",
	})
	// The destination exists, so the source lands under dst/proj.
	// b.txt already exists there; a.txt does not.
	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "proj"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "proj", "b.txt"), []byte("old b\n"), 0644))

	prompter := &testutil.ScriptedPrompter{Answers: []bool{false}}
	copier := fsops.NewCopier(prompter)
	_, err := copier.Copy(filepath.Join(root, "proj"), dst, types.CopyOptions{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopyRefused))

	// a.txt was copied before the decline and stays; no rollback.
	assert.FileExists(t, filepath.Join(dst, "proj", "a.txt"))
	got, readErr := os.ReadFile(filepath.Join(dst, "proj", "b.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "old b\n", string(got))
}

func TestCopyAcceptedOverwrite(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"files/file.txt": "new contents\n",
	})
	dst := filepath.Join(t.TempDir(), "existing.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old contents\n"), 0644))

	copier := fsops.NewCopier(&testutil.ScriptedPrompter{Answers: []bool{true}})
	_, err := copier.Copy(filepath.Join(root, "files/file.txt"), dst, types.CopyOptions{})
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new contents\n", string(got))
}

func TestCopyForceSkipsPrompt(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"files/file.txt": "new contents\n",
	})
	dst := filepath.Join(t.TempDir(), "existing.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old contents\n"), 0644))

	prompter := &testutil.ScriptedPrompter{}
	copier := fsops.NewCopier(prompter)
	_, err := copier.Copy(filepath.Join(root, "files/file.txt"), dst, types.CopyOptions{Force: true})
	require.NoError(t, err)

	assert.Empty(t, prompter.Asked, "--force must not prompt")
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new contents\n", string(got))
}

func TestCopyDryRunTouchesNothing(t *testing.T) {
	root := testutil.TempBoilerplates(t, map[string]string{
		"proj/a.txt":     "a\n",
		"proj/sub/b.txt": "b\n",
	})
	dst := filepath.Join(t.TempDir(), "out")

	prompter := &testutil.ScriptedPrompter{}
	copier := fsops.NewCopier(prompter)
	result, err := copier.Copy(filepath.Join(root, "proj"), dst, types.CopyOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Len(t, result.Copied, 2, "dry run reports every file it would copy")
	assert.NoDirExists(t, dst)
	assert.Empty(t, prompter.Asked)
}

func TestCopyMissingSource(t *testing.T) {
	copier := fsops.NewCopier(&testutil.ScriptedPrompter{})
	_, err := copier.Copy("/nonexistent/src", t.TempDir(), types.CopyOptions{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
