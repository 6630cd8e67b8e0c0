package playlist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-trx-to-playlist/testsuite"
	"github.com/hashicorp/go-version"
)

// WriteError is returned when the playlist can not be written to its destination.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write playlist (%s): %s", e.Path, e.Err)
}

// Unwrap ...
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Emitter ...
type Emitter interface {
	Emit(suite testsuite.Suite, pth string) error
}

type emitter struct {
	version     *version.Version
	fileManager fileutil.FileManager
	logger      log.Logger
}

// NewEmitter ...
func NewEmitter(version *version.Version, fileManager fileutil.FileManager, logger log.Logger) Emitter {
	return &emitter{
		version:     version,
		fileManager: fileManager,
		logger:      logger,
	}
}

// Emit writes the playlist of suite to pth, replacing any existing file.
// The file is either fully written or left untouched.
func (e emitter) Emit(suite testsuite.Suite, pth string) error {
	content, err := Marshal(Build(suite, e.version))
	if err != nil {
		return fmt.Errorf("failed to serialize playlist: %w", err)
	}

	if err := e.writeAtomic(pth, content); err != nil {
		return &WriteError{Path: pth, Err: err}
	}

	e.logger.Debugf("Playlist (version %s) written: %s", versionAttribute(e.version), pth)
	return nil
}

func (e emitter) writeAtomic(pth string, content []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(pth), "."+filepath.Base(pth)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPth := tmpFile.Name()

	// os.CreateTemp creates the file with 0600
	if err := tmpFile.Chmod(0644); err != nil {
		_ = tmpFile.Close()
		e.remove(tmpPth)
		return err
	}
	if _, err := tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		e.remove(tmpPth)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		e.remove(tmpPth)
		return err
	}

	if err := os.Rename(tmpPth, pth); err != nil {
		e.remove(tmpPth)
		return err
	}

	return nil
}

func (e emitter) remove(pth string) {
	if err := e.fileManager.Remove(pth); err != nil {
		e.logger.Warnf("Failed to remove temporary playlist file (%s): %s", pth, err)
	}
}
