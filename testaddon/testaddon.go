package testaddon

import (
	"fmt"
	"path/filepath"
)

// Exporter ...
type Exporter interface {
	CopyAndSaveMetadata(info AddonCopy) error
}

type exporter struct {
	testAddon TestAddon
}

// NewExporter ...
func NewExporter(testAddon TestAddon) Exporter {
	return &exporter{
		testAddon: testAddon,
	}
}

// AddonCopy ...
type AddonCopy struct {
	SourceTestResultPaths []string
	TargetAddonPath       string
	TargetAddonBundleName string
}

func (e exporter) CopyAndSaveMetadata(info AddonCopy) error {
	info.TargetAddonBundleName = e.testAddon.ReplaceUnsupportedFilenameCharacters(info.TargetAddonBundleName)
	addonPerStepOutputDir := filepath.Join(info.TargetAddonPath, info.TargetAddonBundleName)

	for i, targetName := range targetFileNames(info.SourceTestResultPaths) {
		if err := e.testAddon.CopyFile(info.SourceTestResultPaths[i], filepath.Join(addonPerStepOutputDir, targetName)); err != nil {
			return err
		}
	}
	if err := e.testAddon.SaveBundleMetadata(addonPerStepOutputDir, info.TargetAddonBundleName); err != nil {
		return err
	}
	return nil
}

// targetFileNames keeps the base name of every source path. A base name already taken by an
// earlier path, or by the bundle metadata file, is prefixed with the path's index.
func targetFileNames(sourcePaths []string) []string {
	taken := map[string]bool{bundleMetadataFileName: true}
	names := make([]string, 0, len(sourcePaths))
	for i, pth := range sourcePaths {
		name := filepath.Base(pth)
		for taken[name] {
			name = fmt.Sprintf("%d-%s", i, name)
		}
		taken[name] = true
		names = append(names, name)
	}
	return names
}
