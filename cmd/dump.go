package cmd

import (
	"fmt"

	"codedump/pkg/config"
	"codedump/pkg/dump"
	"codedump/pkg/logging"
	"codedump/pkg/version"

	"github.com/spf13/cobra"
)

// dumpCmd is the explicit form of the default action.
var dumpCmd = &cobra.Command{
	Use:   "dump [paths...]",
	Short: "Combine the configured files into the output artifact",
	Long: `Dump walks the configured include paths, filters files by extension,
and writes their contents into a single output file with a relative path
header before each one. Positional arguments override the configured
include paths.`,
	Args: cobra.ArbitraryArgs,
	RunE: runDump,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to a codedump.yaml config file")
	flags.StringArrayP("include", "i", nil, "File or directory to include (repeatable)")
	flags.StringP("output", "o", "", "Destination path for the combined output")
	flags.StringArrayP("ext", "e", nil, "File extension to match, e.g. .go (repeatable)")
	flags.String("tree", "", "Also write a tree of the collected files to this path")
	flags.String("ignore-file", "", "Path to a .dumpignore-style pattern file")
	flags.Int("workers", 0, "Number of concurrent file readers (0 = config default)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(dumpCmd)
}

// runDump resolves the configuration and executes the combine run.
func runDump(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	if verbose {
		debugLogger, err := logging.Setup(true, "codedump", version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = debugLogger
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	cfg, err := config.Load(configPath, logger)
	if err != nil {
		return err
	}

	// Flags beat config file and environment; positional paths beat both.
	if flags.Changed("include") {
		cfg.IncludePaths, _ = flags.GetStringArray("include")
	}
	if len(args) > 0 {
		cfg.IncludePaths = args
	}
	if flags.Changed("output") {
		cfg.OutputFile, _ = flags.GetString("output")
	}
	if flags.Changed("ext") {
		cfg.FileExtensions, _ = flags.GetStringArray("ext")
	}
	if flags.Changed("tree") {
		cfg.TreeFile, _ = flags.GetString("tree")
	}
	if flags.Changed("ignore-file") {
		cfg.IgnoreFile, _ = flags.GetString("ignore-file")
	}
	if workers, _ := flags.GetInt("workers"); workers > 0 {
		cfg.MaxWorkers = workers
	}

	_, err = dump.Run(dump.Arguments{
		IncludePaths:   cfg.IncludePaths,
		OutputFile:     cfg.OutputFile,
		FileExtensions: cfg.FileExtensions,
		TreeFile:       cfg.TreeFile,
		IgnoreFile:     cfg.IgnoreFile,
		IgnorePatterns: cfg.IgnorePatterns,
		MaxWorkers:     cfg.MaxWorkers,
		Verbose:        verbose,
	}, logger)
	return err
}
