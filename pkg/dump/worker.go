package dump

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// readJob pairs a file path with its position in the collected list.
type readJob struct {
	index int
	path  string
}

// ReadFilesConcurrently reads files using a worker pool and returns their
// rendered blocks. Each result is slotted by its list index, so the returned
// slice is in discovery order regardless of read completion order.
func ReadFilesConcurrently(files []string, maxWorkers int, workDir string, logger *zap.Logger) []FileContent {
	contents := make([]FileContent, len(files))
	jobs := make(chan readJob, len(files))
	var wg sync.WaitGroup

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}
	if maxWorkers > len(files) && len(files) > 0 {
		maxWorkers = len(files)
	}

	logger.Debug("Initializing worker pool", zap.Int("workers", maxWorkers))
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go func() {
			defer wg.Done()
			for job := range jobs {
				// Indices are distinct per job, so each slot has one writer.
				contents[job.index] = ReadSingleFile(job.index, job.path, workDir, workerLogger)
			}
		}()
	}

	for i, file := range files {
		jobs <- readJob{index: i, path: file}
	}
	close(jobs)
	wg.Wait()

	logger.Debug("All files read", zap.Int("fileCount", len(contents)))
	return contents
}
