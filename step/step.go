package step

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-trx-to-playlist/output"
	"github.com/bitrise-steplib/steps-trx-to-playlist/playlist"
	"github.com/bitrise-steplib/steps-trx-to-playlist/transformer"
	"github.com/hashicorp/go-version"
	shellquote "github.com/kballard/go-shellquote"
)

// ErrFailedTests is returned by Run when fail_on_failed_tests is set and the playlist is not empty.
var ErrFailedTests = errors.New("failed tests found")

// Input ...
type Input struct {
	TrxPath            string `env:"trx_path"`
	AdditionalTrxPaths string `env:"additional_trx_paths"`
	PlaylistPath       string `env:"playlist_path"`
	PlaylistVersion    string `env:"playlist_version,opt[1.0,2.0]"`
	FailOnFailedTests  bool   `env:"fail_on_failed_tests,opt[yes,no]"`
	VerboseLog         bool   `env:"verbose_log,opt[yes,no]"`
	DeployDir          string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	TrxPaths          []string
	PlaylistPath      string
	PlaylistVersion   *version.Version
	FailOnFailedTests bool
	DeployDir         string
	// ExportOutputs is false when the paths come from the command line, outside of a CI step.
	ExportOutputs bool
}

// Result ...
type Result struct {
	TrxPaths     []string
	PlaylistPath string
	DeployDir    string
	FailedTests  []string
}

// TrxToPlaylistConfigParser ...
type TrxToPlaylistConfigParser struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
}

// NewTrxToPlaylistConfigParser ...
func NewTrxToPlaylistConfigParser(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier) TrxToPlaylistConfigParser {
	return TrxToPlaylistConfigParser{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
	}
}

// ProcessConfig parses the step inputs. Two args (<trx_path> <playlist_path>) override the path inputs.
func (p TrxToPlaylistConfigParser) ProcessConfig(args []string) (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	exportOutputs := true
	switch len(args) {
	case 0:
	case 2:
		input.TrxPath, input.PlaylistPath = args[0], args[1]
		exportOutputs = false
	default:
		return Config{}, fmt.Errorf("invalid number of arguments (%d), usage: <trx_path> <playlist_path>", len(args))
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.VerboseLog)

	if input.TrxPath == "" {
		return Config{}, errors.New("TRX path (trx_path) is required")
	}
	if input.PlaylistPath == "" {
		return Config{}, errors.New("playlist path (playlist_path) is required")
	}

	trxPaths := []string{input.TrxPath}
	if input.AdditionalTrxPaths != "" {
		additionalTrxPaths, err := shellquote.Split(input.AdditionalTrxPaths)
		if err != nil {
			return Config{}, fmt.Errorf("invalid additional TRX paths (additional_trx_paths): %w", err)
		}
		trxPaths = append(trxPaths, additionalTrxPaths...)
	}

	for i, pth := range trxPaths {
		absPth, err := p.pathModifier.AbsPath(pth)
		if err != nil {
			return Config{}, fmt.Errorf("failed to get absolute TRX path (%s): %w", pth, err)
		}
		trxPaths[i] = absPth
	}

	playlistPath, err := p.pathModifier.AbsPath(input.PlaylistPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute playlist path (%s): %w", input.PlaylistPath, err)
	}
	if filepath.Ext(playlistPath) != ".playlist" {
		p.logger.Warnf("Playlist path (%s) has no .playlist extension, test runners may not recognize it", playlistPath)
	}

	playlistVersion, err := playlist.ParseVersion(input.PlaylistVersion)
	if err != nil {
		return Config{}, err
	}

	return Config{
		TrxPaths:          trxPaths,
		PlaylistPath:      playlistPath,
		PlaylistVersion:   playlistVersion,
		FailOnFailedTests: input.FailOnFailedTests,
		DeployDir:         input.DeployDir,
		ExportOutputs:     exportOutputs,
	}, nil
}

// TrxToPlaylistConverter ...
type TrxToPlaylistConverter struct {
	logger         log.Logger
	transformer    transformer.Transformer
	outputExporter output.Exporter
}

// NewTrxToPlaylistConverter ...
func NewTrxToPlaylistConverter(logger log.Logger, transformer transformer.Transformer, outputExporter output.Exporter) TrxToPlaylistConverter {
	return TrxToPlaylistConverter{
		logger:         logger,
		transformer:    transformer,
		outputExporter: outputExporter,
	}
}

// Run ...
func (c TrxToPlaylistConverter) Run(config Config) (Result, error) {
	var res transformer.Result
	var err error
	if len(config.TrxPaths) == 1 {
		res, err = c.transformer.Transform(config.TrxPaths[0], config.PlaylistPath)
	} else {
		res, err = c.transformer.TransformMerged(config.TrxPaths, config.PlaylistPath)
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate playlist: %w", err)
	}

	result := Result{
		TrxPaths:     config.TrxPaths,
		PlaylistPath: res.PlaylistPath,
		DeployDir:    config.DeployDir,
		FailedTests:  res.Suite.FullNames(),
	}

	if config.FailOnFailedTests && len(result.FailedTests) > 0 {
		return result, fmt.Errorf("%w: %d test(s) in %s", ErrFailedTests, len(result.FailedTests), result.PlaylistPath)
	}

	return result, nil
}

// Export ...
func (c TrxToPlaylistConverter) Export(result Result) error {
	c.logger.Println()
	c.logger.Infof("Exporting outputs")

	if err := c.outputExporter.ExportPlaylistPath(result.PlaylistPath); err != nil {
		return err
	}
	c.logger.Donef("%s -> %s", output.PlaylistPathEnvVarKey, result.PlaylistPath)

	if err := c.outputExporter.ExportFailedTestCases(result.FailedTests); err != nil {
		return err
	}
	c.logger.Donef("%s -> %d", output.FailedTestCountEnvVarKey, len(result.FailedTests))

	if result.DeployDir != "" {
		if err := c.outputExporter.ExportPlaylistArtifact(result.DeployDir, result.PlaylistPath); err != nil {
			c.logger.Warnf("Failed to export playlist to the deploy dir: %s", err)
		}
	}

	if len(result.TrxPaths) > 0 {
		c.outputExporter.ExportTestResults(result.TrxPaths, bundleName(result.TrxPaths[0]))
	}

	return nil
}

func bundleName(trxPath string) string {
	base := filepath.Base(trxPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
