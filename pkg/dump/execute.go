package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codedump/pkg/ignore"

	"go.uber.org/zap"
)

// Run executes one dump: collect the matching files, read them, and write
// the combined artifact (plus the optional tree artifact). The returned
// Result carries the processed-file count for the completion summary.
func Run(args Arguments, logger *zap.Logger) (Result, error) {
	startTime := time.Now()
	logger.Info("Starting dump", zap.Strings("includePaths", args.IncludePaths))

	workDir, err := os.Getwd()
	if err != nil {
		return Result{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := ensureDirectory(filepath.Dir(args.OutputFile), logger); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	if args.TreeFile != "" {
		if err := ensureDirectory(filepath.Dir(args.TreeFile), logger); err != nil {
			return Result{}, fmt.Errorf("failed to create tree output directory: %w", err)
		}
	}

	di, err := ignore.Load(args.IgnoreFile, args.IgnorePatterns, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	if di.Len() > 0 {
		logger.Debug("Loaded ignore patterns", zap.Int("totalPatterns", di.Len()))
	}

	files, err := CollectFiles(args.IncludePaths, args.FileExtensions, di, logger, args.Verbose)
	if err != nil {
		return Result{}, fmt.Errorf("failed to collect files: %w", err)
	}

	if len(files) == 0 {
		logger.Warn("No files matched the include paths and extension filter")
	}

	warnAboutBinaries(files, logger)

	contents := ReadFilesConcurrently(files, args.MaxWorkers, workDir, logger)

	if err := WriteCombinedFile(args.OutputFile, contents, logger); err != nil {
		return Result{}, err
	}

	if args.TreeFile != "" {
		treeContent := GenerateTree(contents, filepath.Base(workDir)+"/")
		if err := os.WriteFile(args.TreeFile, []byte(treeContent), 0644); err != nil {
			logger.Error("Failed to write tree file", zap.String("file", args.TreeFile), zap.Error(err))
			return Result{}, fmt.Errorf("failed to write tree file: %w", err)
		}
	}

	result := Result{FilesProcessed: len(contents), OutputFile: args.OutputFile}
	logger.Info("Dumped files into combined artifact",
		zap.Int("totalFiles", result.FilesProcessed),
		zap.String("outputFile", result.OutputFile),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// warnAboutBinaries flags matched files whose leading bytes look binary.
// They stay in the output, the extension allowlist decides inclusion.
func warnAboutBinaries(files []string, logger *zap.Logger) {
	var binaries []string
	for _, file := range files {
		isBinary, err := isBinaryFile(file)
		if err != nil {
			continue // A vanished file surfaces as a placeholder block later.
		}
		if isBinary {
			binaries = append(binaries, file)
		}
	}

	if len(binaries) > 0 {
		logger.Warn("Matched files appear to be binary and may produce unreadable output",
			zap.Int("binaryFileCount", len(binaries)),
			zap.Strings("binaryFiles", binaries))
	}
}
