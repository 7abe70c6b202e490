package dump

// Arguments holds the resolved options for one dump run. It is constructed
// once at startup from config file, environment and flags, then passed in
// explicitly; the package keeps no global state.
type Arguments struct {
	IncludePaths   []string // Files or directories to consider, in configured order.
	OutputFile     string   // Destination path for the combined artifact.
	FileExtensions []string // File-name suffixes that qualify a file for inclusion.
	TreeFile       string   // Optional destination for the collected-file tree; empty disables it.
	IgnoreFile     string   // Optional path to a .dumpignore-style pattern file.
	IgnorePatterns []string // Additional ignore pattern lines.
	MaxWorkers     int      // Number of concurrent file readers; values <= 0 fall back to NumCPU.
	Verbose        bool     // Enables detailed logging of skipped and suspicious files.
}

// FileContent is one rendered block of the combined artifact: the header
// plus either the file's verbatim bytes or a read-error placeholder.
type FileContent struct {
	Index   int    // Position in the collected file list; fixes output order.
	Path    string // Slash-separated path relative to the working directory.
	Content string // Header and body, ready to be written.
}

// Result summarizes a completed run.
type Result struct {
	FilesProcessed int    // Number of header blocks written, failed reads included.
	OutputFile     string // Path of the combined artifact.
}
