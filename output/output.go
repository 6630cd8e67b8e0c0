package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-trx-to-playlist/testaddon"
)

// Output keys ...
const (
	PlaylistPathEnvVarKey       = "BITRISE_TRX_PLAYLIST_PATH"
	PlaylistDeployPathEnvVarKey = "BITRISE_TRX_PLAYLIST_DEPLOY_PATH"
	FailedTestCountEnvVarKey    = "BITRISE_FAILED_TEST_COUNT"
	FailedTestCasesEnvVarKey    = "BITRISE_FAILED_TEST_CASES"
)

const failedTestCasesEnvVarSizeLimitInBytes = 1024

// Exporter ...
type Exporter interface {
	ExportPlaylistPath(playlistPath string) error
	ExportFailedTestCases(fullNames []string) error
	ExportPlaylistArtifact(deployDir, playlistPath string) error
	ExportTestResults(trxPaths []string, bundleName string)
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	outputExporter    export.Exporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter export.Exporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportPlaylistPath(playlistPath string) error {
	if err := e.envRepository.Set(PlaylistPathEnvVarKey, playlistPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", PlaylistPathEnvVarKey, err)
	}
	return nil
}

func (e exporter) ExportFailedTestCases(fullNames []string) error {
	if err := e.envRepository.Set(FailedTestCountEnvVarKey, strconv.Itoa(len(fullNames))); err != nil {
		return fmt.Errorf("failed to export %s: %w", FailedTestCountEnvVarKey, err)
	}

	var message strings.Builder
	for i, fullName := range fullNames {
		line := fmt.Sprintf("- %s\n", fullName)

		if message.Len()+len(line) > failedTestCasesEnvVarSizeLimitInBytes {
			e.logger.Warnf("%s env var size limit (%d characters) exceeded. Skipping %d test cases.", FailedTestCasesEnvVarKey, failedTestCasesEnvVarSizeLimitInBytes, len(fullNames)-i)
			break
		}

		message.WriteString(line)
	}

	if err := e.envRepository.Set(FailedTestCasesEnvVarKey, message.String()); err != nil {
		return fmt.Errorf("failed to export %s: %w", FailedTestCasesEnvVarKey, err)
	}

	return nil
}

func (e exporter) ExportPlaylistArtifact(deployDir, playlistPath string) error {
	deployPth := filepath.Join(deployDir, filepath.Base(playlistPath))
	if err := e.outputExporter.ExportOutputFile(PlaylistDeployPathEnvVarKey, playlistPath, deployPth); err != nil {
		return fmt.Errorf("failed to export playlist from (%s) to (%s): %w", playlistPath, deployPth, err)
	}
	return nil
}

func (e exporter) ExportTestResults(trxPaths []string, bundleName string) {
	addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey)
	if len(addonResultPath) == 0 {
		return
	}

	e.logger.Println()
	e.logger.Infof("Exporting test results")

	if err := e.testAddonExporter.CopyAndSaveMetadata(testaddon.AddonCopy{
		SourceTestResultPaths: trxPaths,
		TargetAddonPath:       addonResultPath,
		TargetAddonBundleName: bundleName,
	}); err != nil {
		e.logger.Warnf("Failed to export test results: %s", err)
	}
}
