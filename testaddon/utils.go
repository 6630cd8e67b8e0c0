package testaddon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

const bundleMetadataFileName = "test-info.json"

// TestAddon ...
type TestAddon interface {
	ReplaceUnsupportedFilenameCharacters(s string) string
	CopyFile(source string, targetPath string) error
	SaveBundleMetadata(outputDir string, bundleName string) error
}

type testAddon struct {
	logger         log.Logger
	commandFactory command.Factory
	fileManager    fileutil.FileManager
}

// NewTestAddon ...
func NewTestAddon(logger log.Logger, commandFactory command.Factory, fileManager fileutil.FileManager) TestAddon {
	return &testAddon{
		logger:         logger,
		commandFactory: commandFactory,
		fileManager:    fileManager,
	}
}

// ReplaceUnsupportedFilenameCharacters Replaces characters '/' and ':', which are unsupported in filenames on macOS
func (t testAddon) ReplaceUnsupportedFilenameCharacters(s string) string {
	s = strings.Replace(s, "/", "-", -1)
	s = strings.Replace(s, ":", "-", -1)
	return s
}

func (t testAddon) CopyFile(source string, targetPath string) error {
	targetDir := filepath.Dir(targetPath)
	if err := os.MkdirAll(targetDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory (%s): %w", targetDir, err)
	}

	cmd := t.commandFactory.Create("cp", []string{source, targetPath}, nil)
	t.logger.Donef("$ %s", cmd.PrintableCommandArgs())
	if out, err := cmd.RunAndReturnTrimmedCombinedOutput(); err != nil {
		return fmt.Errorf("copy failed: %w, output: %s", err, out)
	}

	return nil
}

func (t testAddon) SaveBundleMetadata(outputDir string, bundleName string) error {
	type testBundle struct {
		BundleName string `json:"test-name"`
	}
	bytes, err := json.Marshal(testBundle{
		BundleName: bundleName,
	})
	if err != nil {
		return fmt.Errorf("could not encode metadata: %w", err)
	}
	if err = t.fileManager.Write(filepath.Join(outputDir, bundleMetadataFileName), string(bytes), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
