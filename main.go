package main

import (
	"log"
	"os"
	"strings"

	"codedump/cmd"
	"codedump/pkg/logging"
	"codedump/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := logging.Setup(false, "codedump", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		logger.Error("codedump execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger. Zap's Sync reports "invalid argument"
// when stderr is a terminal or pipe that cannot be synced, so only
// attempt it for targets where flushing can succeed.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
