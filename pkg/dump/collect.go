package dump

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"codedump/pkg/ignore"

	"go.uber.org/zap"
)

// CollectFiles traverses the include entries in order and returns the
// absolute paths of every file whose name passes the extension filter.
// Entries that do not exist contribute nothing. Overlapping entries are not
// deduplicated; discovery order is preserved and never sorted.
func CollectFiles(includePaths []string, extensions []string, di *ignore.DumpIgnore, logger *zap.Logger, verbose bool) ([]string, error) {
	var files []string
	logger.Debug("Starting file collection", zap.Int("entryCount", len(includePaths)))

	for _, entry := range includePaths {
		absPath, err := filepath.Abs(entry)
		if err != nil {
			logger.Warn("Failed to resolve include entry", zap.String("entry", entry), zap.Error(err))
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			logger.Warn("Include entry does not exist and will be skipped", zap.String("entry", entry))
			continue
		}

		switch {
		case info.Mode().IsRegular():
			if !matchesExtension(info.Name(), extensions) {
				if verbose {
					logger.Debug("Listed file does not match extension filter", zap.String("file", absPath))
				}
				continue
			}
			files = append(files, absPath)
		case info.IsDir():
			collected, err := collectFromDirectory(absPath, extensions, di, logger, verbose)
			if err != nil {
				logger.Warn("Failed to traverse directory", zap.String("dir", absPath), zap.Error(err))
				continue
			}
			files = append(files, collected...)
		default:
			if verbose {
				logger.Debug("Include entry is neither file nor directory", zap.String("entry", absPath))
			}
		}
	}

	logger.Debug("Completed file collection", zap.Int("matchedFiles", len(files)))
	return files, nil
}

// collectFromDirectory walks a directory subtree and returns matching files
// in walk order. Ignore patterns prune whole directories and drop files;
// paths that cannot be accessed are skipped rather than failing the walk.
func collectFromDirectory(dir string, extensions []string, di *ignore.DumpIgnore, logger *zap.Logger, verbose bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && di.MatchesPath(relPath+"/") {
				if verbose {
					logger.Debug("Skipping ignored directory", zap.String("dir", path))
				}
				return filepath.SkipDir
			}
			return nil
		}

		if di.MatchesPath(relPath) {
			if verbose {
				logger.Debug("Skipping ignored file", zap.String("file", path))
			}
			return nil
		}

		if matchesExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return files, err
	}

	return files, nil
}

// matchesExtension reports whether a file name ends in one of the
// configured suffixes. Matching is case-sensitive.
func matchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
