package dump

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// WriteCombinedFile writes the rendered blocks to the output file in order,
// truncating any previous content. An open failure is fatal to the run; the
// handle is closed on every exit path.
func WriteCombinedFile(outputPath string, contents []FileContent, logger *zap.Logger) error {
	logger.Debug("Writing combined content to output file", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, content := range contents {
		if _, err := writer.WriteString(content.Content); err != nil {
			logger.Error("Failed to write content to combined file",
				zap.String("file", outputPath),
				zap.String("contentPath", content.Path),
				zap.Error(err))
			return fmt.Errorf("failed to write content: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
