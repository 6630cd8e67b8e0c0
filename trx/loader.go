package trx

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// Loader ...
type Loader interface {
	Load(pth string) (TestRun, error)
}

type loader struct {
	pathChecker pathutil.PathChecker
	fileManager fileutil.FileManager
}

// NewLoader ...
func NewLoader(pathChecker pathutil.PathChecker, fileManager fileutil.FileManager) Loader {
	return &loader{
		pathChecker: pathChecker,
		fileManager: fileManager,
	}
}

// Load reads the TRX file at pth into memory.
func (l loader) Load(pth string) (TestRun, error) {
	exists, err := l.pathChecker.IsPathExists(pth)
	if err != nil {
		return TestRun{}, fmt.Errorf("failed to check if TRX file exists (%s): %w", pth, err)
	}
	if !exists {
		return TestRun{}, &NotFoundError{Path: pth}
	}

	f, err := l.fileManager.Open(pth)
	if err != nil {
		return TestRun{}, fmt.Errorf("failed to open TRX file (%s): %w", pth, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var run TestRun
	if err := newDecoder(f).Decode(&run); err != nil {
		return TestRun{}, &ParseError{Path: pth, Err: err}
	}

	return run, nil
}
