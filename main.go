package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-trx-to-playlist/output"
	"github.com/bitrise-steplib/steps-trx-to-playlist/playlist"
	"github.com/bitrise-steplib/steps-trx-to-playlist/step"
	"github.com/bitrise-steplib/steps-trx-to-playlist/testaddon"
	"github.com/bitrise-steplib/steps-trx-to-playlist/testsuite"
	"github.com/bitrise-steplib/steps-trx-to-playlist/transformer"
	"github.com/bitrise-steplib/steps-trx-to-playlist/trx"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := log.NewLogger()
	osEnvRepository := env.NewRepository()

	configParser := step.NewTrxToPlaylistConfigParser(
		stepconf.NewInputParser(step.NewInputRepository(osEnvRepository)),
		logger,
		pathutil.NewPathModifier(),
	)
	config, err := configParser.ProcessConfig(args)
	if err != nil {
		logger.Errorf("Failed to process Step inputs: %s", err)
		return 1
	}

	converter := createConverter(logger, osEnvRepository, config)

	result, runErr := converter.Run(config)
	if config.ExportOutputs && result.PlaylistPath != "" {
		if err := converter.Export(result); err != nil {
			logger.Errorf("Failed to export Step outputs: %s", err)
			return 1
		}
	}
	if runErr != nil {
		logger.Errorf("Failed to execute Step main logic: %s", runErr)
		return 1
	}

	return 0
}

func createConverter(logger log.Logger, osEnvRepository env.Repository, config step.Config) step.TrxToPlaylistConverter {
	envRepository := stepenv.NewRepository(osEnvRepository)
	commandFactory := command.NewFactory(envRepository)
	fileManager := fileutil.NewFileManager()
	pathChecker := pathutil.NewPathChecker()

	loader := trx.NewLoader(pathChecker, fileManager)
	extractor := testsuite.NewExtractor(logger)
	emitter := playlist.NewEmitter(config.PlaylistVersion, fileManager, logger)
	playlistTransformer := transformer.NewTransformer(logger, loader, extractor, emitter)

	testAddonExporter := testaddon.NewExporter(testaddon.NewTestAddon(logger, commandFactory, fileManager))
	outputExporter := output.NewExporter(envRepository, logger, export.NewExporter(commandFactory, fileManager), testAddonExporter)

	return step.NewTrxToPlaylistConverter(logger, playlistTransformer, outputExporter)
}
