package playlist

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-trx-to-playlist/testsuite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenSuite_WhenEmitting_ThenWritesPlaylist(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "failed.playlist")

	// When
	err := newEmitter(t).Emit(singleFailedTestSuite(), pth)

	// Then
	require.NoError(t, err)
	content, err := os.ReadFile(pth)
	require.NoError(t, err)
	assert.Equal(t, xml.Header+singleFailedTestPlaylist, string(content))
	assertNoTempFiles(t, filepath.Dir(pth))
}

func Test_GivenExistingPlaylist_WhenEmitting_ThenOverwritesIt(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "failed.playlist")
	require.NoError(t, fileutil.NewFileManager().Write(pth, "previous content that is longer than the new playlist"+emptyPlaylist, 0644))

	// When
	err := newEmitter(t).Emit(testsuite.Suite{}, pth)

	// Then
	require.NoError(t, err)
	content, err := os.ReadFile(pth)
	require.NoError(t, err)
	assert.Equal(t, xml.Header+emptyPlaylist, string(content))
}

func Test_GivenSameSuite_WhenEmittingTwice_ThenOutputIsIdentical(t *testing.T) {
	// Given
	dir := t.TempDir()
	first := filepath.Join(dir, "first.playlist")
	second := filepath.Join(dir, "second.playlist")
	emitter := newEmitter(t)

	// When
	require.NoError(t, emitter.Emit(multipleFailedTestsSuite(), first))
	require.NoError(t, emitter.Emit(multipleFailedTestsSuite(), second))

	// Then
	firstContent, err := os.ReadFile(first)
	require.NoError(t, err)
	secondContent, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, firstContent, secondContent)
}

func Test_GivenMissingOutputDir_WhenEmitting_ThenFailsWithWriteError(t *testing.T) {
	// Given
	pth := filepath.Join(t.TempDir(), "missing", "failed.playlist")

	// When
	err := newEmitter(t).Emit(singleFailedTestSuite(), pth)

	// Then
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, pth, writeErr.Path)
	assert.NoFileExists(t, pth)
}

func Test_GivenOutputPathIsDirectory_WhenEmitting_ThenLeavesNoPartialFile(t *testing.T) {
	// Given
	dir := t.TempDir()
	pth := filepath.Join(dir, "failed.playlist")
	require.NoError(t, os.Mkdir(pth, 0755))
	require.NoError(t, fileutil.NewFileManager().Write(filepath.Join(pth, "keep"), "", 0644))

	// When
	err := newEmitter(t).Emit(singleFailedTestSuite(), pth)

	// Then
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.DirExists(t, pth)
	assertNoTempFiles(t, dir)
}

// Helpers

func newEmitter(t *testing.T) Emitter {
	ver, err := ParseVersion(DefaultVersion)
	require.NoError(t, err)
	return NewEmitter(ver, fileutil.NewFileManager(), log.NewLogger())
}

func assertNoTempFiles(t *testing.T, dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
