// Package main provides the CLI entry point for avlout.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aerotools/avlout/internal/config"
	"github.com/aerotools/avlout/pkg/avlout"
	"github.com/aerotools/avlout/pkg/avlout/models"
	"github.com/aerotools/avlout/pkg/avlout/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	outputPath string
	xlsxPath   string
	configPath string
	runDir     string
	runBase    string
	runCases   int
	pretty     bool
	verbose    bool
	lenient    []string
	outputs    []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "avlout [output files...]",
		Short: "Parse AVL output files",
		Long: `avlout parses the text output files written by AVL (totals, surface, strip
and element forces, stability and body-axis derivatives, hinge moments, strip
shear/moments, system matrix and eigenvalues) and outputs JSON.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && runDir == "" {
				return fmt.Errorf("requires at least one output file or --dir")
			}
			return nil
		},
		SilenceUsage: true,
		RunE:         run,
	}
	addFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.StringVar(&xlsxPath, "xlsx", "", "Also write results to an Excel workbook")
	fs.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&runDir, "dir", "", "Run directory to parse")
	fs.StringVar(&runBase, "base", "", "Session name of the run; with --cases reads {base}-{case}.{ext}")
	fs.IntVar(&runCases, "cases", 0, "Number of run cases to read from --dir")
	fs.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	fs.StringSliceVar(&lenient, "lenient", nil, "Extensions parsed leniently (short rows padded with NaN)")
	fs.StringSliceVar(&outputs, "outputs", nil, "Output names read with --cases, e.g. Totals,StripForces (default: per-case session outputs)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := cfg.Options(logger)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		jsonData []byte
		results  map[string]*models.Result
	)
	switch {
	case runDir != "" && runCases > 0:
		if runBase == "" {
			return fmt.Errorf("--cases requires --base")
		}
		logger.Debug("Reading run", zap.String("dir", runDir), zap.String("base", runBase), zap.Int("cases", runCases))
		runResults, err := avlout.ReadRun(ctx, runDir, runBase, runCases, cfg.Formats(), opts)
		if err != nil {
			return fmt.Errorf("reading run failed: %w", err)
		}
		if jsonData, err = output.RunToJSON(runResults, cfg.Pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		results = flattenRun(runResults)
	case runDir != "":
		logger.Debug("Parsing directory", zap.String("dir", runDir))
		if results, err = avlout.ParseDir(ctx, runDir, opts); err != nil {
			return fmt.Errorf("parsing directory failed: %w", err)
		}
		if jsonData, err = output.ResultsToJSON(results, cfg.Pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	default:
		results = make(map[string]*models.Result, len(args))
		for _, path := range args {
			logger.Debug("Parsing file", zap.String("path", path))
			res, err := avlout.Parse(path, opts)
			if err != nil {
				return fmt.Errorf("parsing failed: %w", err)
			}
			results[filepath.Base(path)] = res
		}
		if len(args) == 1 {
			jsonData, err = output.ToJSON(results[filepath.Base(args[0])], cfg.Pretty)
		} else {
			jsonData, err = output.ResultsToJSON(results, cfg.Pretty)
		}
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(jsonData))
	}

	if xlsxPath != "" {
		if err := output.ToXLSX(results, xlsxPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}
	return nil
}

// loadConfig reads the configuration file, if any, and applies flag overrides.
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if fs.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if cfg.Strictness == nil {
		cfg.Strictness = map[string]string{}
	}
	if fs.Changed("outputs") {
		cfg.Outputs = outputs
	}
	for _, ext := range lenient {
		cfg.Strictness[strings.TrimPrefix(strings.ToLower(ext), ".")] = string(avlout.Lenient)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flattenRun keys run results by the file name each was read from.
func flattenRun(runResults avlout.RunResults) map[string]*models.Result {
	results := make(map[string]*models.Result)
	for _, outputs := range runResults {
		for _, res := range outputs {
			results[res.File] = res
		}
	}
	return results
}
