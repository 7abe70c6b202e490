package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ReadSingleFile renders one block of the combined artifact: a header line
// carrying the path relative to workDir, then the file's bytes verbatim. A
// failed read produces a placeholder body instead; it never fails the run.
func ReadSingleFile(index int, filePath, workDir string, logger *zap.Logger) FileContent {
	relPath, relErr := filepath.Rel(workDir, filePath)
	if relErr != nil {
		logger.Warn("Unable to determine relative path, using absolute path",
			zap.String("filePath", filePath),
			zap.String("workDir", workDir),
			zap.Error(relErr))
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	header := fmt.Sprintf("\n===== %s =====\n\n", relPath)

	fileBytes, readErr := os.ReadFile(filePath)
	if readErr != nil {
		logger.Warn("Failed to read file, writing placeholder",
			zap.String("filePath", filePath),
			zap.Error(readErr))
		return FileContent{
			Index:   index,
			Path:    relPath,
			Content: header + fmt.Sprintf("[Error reading file: %v]\n", readErr),
		}
	}

	return FileContent{
		Index:   index,
		Path:    relPath,
		Content: header + string(fileBytes),
	}
}
