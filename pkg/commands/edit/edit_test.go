// pkg/commands/edit/edit_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Fake launcher (plus /bin/true for the exec path)
// PURPOSE: Test editor handoff and failure wrapping

package edit_test

import (
	stderrors "errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/boil/pkg/commands/edit"
	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/testutil"
)

func TestEditHandsFullPathToLauncher(t *testing.T) {
	launcher := &testutil.RecordingLauncher{}

	err := edit.Edit(edit.Options{
		Root:     "./boilerplates",
		Source:   "files/file.txt",
		Editor:   "vi",
		Launcher: launcher,
	})
	require.NoError(t, err)

	assert.Equal(t, "vi", launcher.Editor)
	assert.Equal(t, "./boilerplates/files/file.txt", launcher.Path)
}

func TestEditWrapsLauncherFailure(t *testing.T) {
	launcher := &testutil.RecordingLauncher{Err: stderrors.New("exit status 1")}

	err := edit.Edit(edit.Options{
		Root:     "./boilerplates",
		Source:   "files/file.txt",
		Editor:   "vi",
		Launcher: launcher,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditor))
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestExecLauncherEmptyEditorFails(t *testing.T) {
	// With no editor configured the exec itself fails, which is the
	// documented OS-level failure mode.
	err := edit.NewExecLauncher().Launch("", "/tmp/anything")
	require.Error(t, err)
}

func TestExecLauncherRunsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/true")
	}

	err := edit.NewExecLauncher().Launch("/bin/true", "/tmp/anything")
	require.NoError(t, err)
}

func TestExecLauncherSplitsEditorArguments(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	// "sh -c true" exercises the whitespace split; the path argument is
	// appended after the editor's own arguments.
	err := edit.NewExecLauncher().Launch("/bin/sh -c true", "/tmp/anything")
	require.NoError(t, err)
}
