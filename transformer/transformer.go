package transformer

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-trx-to-playlist/playlist"
	"github.com/bitrise-steplib/steps-trx-to-playlist/testsuite"
	"github.com/bitrise-steplib/steps-trx-to-playlist/trx"
)

// Result ...
type Result struct {
	PlaylistPath string
	Suite        testsuite.Suite
}

// Transformer converts TRX test results into a playlist of the failed tests.
type Transformer interface {
	Transform(inputPath, outputPath string) (Result, error)
	TransformMerged(inputPaths []string, outputPath string) (Result, error)
}

type transformer struct {
	logger    log.Logger
	loader    trx.Loader
	extractor testsuite.Extractor
	emitter   playlist.Emitter
}

// NewTransformer ...
func NewTransformer(logger log.Logger, loader trx.Loader, extractor testsuite.Extractor, emitter playlist.Emitter) Transformer {
	return &transformer{
		logger:    logger,
		loader:    loader,
		extractor: extractor,
		emitter:   emitter,
	}
}

// Transform writes the playlist of the failed tests in inputPath to outputPath.
func (t transformer) Transform(inputPath, outputPath string) (Result, error) {
	return t.TransformMerged([]string{inputPath}, outputPath)
}

// TransformMerged merges the TRX files in order and writes one playlist of their failed tests.
func (t transformer) TransformMerged(inputPaths []string, outputPath string) (Result, error) {
	if len(inputPaths) == 0 {
		return Result{}, fmt.Errorf("no TRX file given")
	}

	var runs []trx.TestRun
	for _, pth := range inputPaths {
		t.logger.Printf("Loading %s", pth)

		run, err := t.loader.Load(pth)
		if err != nil {
			return Result{}, err
		}
		runs = append(runs, run)
	}

	t.logger.Println()
	t.logger.Infof("Extracting failed tests")

	suite, err := t.extractor.Extract(trx.Merge(runs...))
	if err != nil {
		return Result{}, fmt.Errorf("failed to extract failed tests: %w", err)
	}

	t.logger.Printf("%d failed test(s) in %d project(s)", suite.MethodCount(), len(suite.Projects))
	t.logger.Println()
	t.logger.Infof("Generating playlist %s", outputPath)

	if err := t.emitter.Emit(suite, outputPath); err != nil {
		return Result{}, err
	}

	t.logger.Donef("Playlist generated")

	return Result{
		PlaylistPath: outputPath,
		Suite:        suite,
	}, nil
}
