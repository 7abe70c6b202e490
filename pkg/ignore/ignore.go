// Package ignore implements gitignore-style pattern matching for the
// optional .dumpignore denylist.
package ignore

import (
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern encapsulates a compiled regular expression pattern,
// a negation flag, and metadata about the pattern's origin.
type Pattern struct {
	Regex  *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Indicates if the pattern is a negation (starts with '!').
	Line   string         // Original pattern line.
	LineNo int            // Line number in the source (1-based).
}

// DumpIgnore represents an ordered collection of ignore patterns.
// Later patterns win, so a negation can re-include an earlier match.
type DumpIgnore struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New initializes an empty DumpIgnore instance with an optional logger.
func New(logger *zap.Logger) *DumpIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DumpIgnore{
		patterns: []*Pattern{},
		logger:   logger,
	}
}

// Load builds a DumpIgnore from an optional pattern file plus extra pattern
// lines supplied by configuration. A missing file is not an error; an empty
// result matches nothing.
func Load(filePath string, extraLines []string, logger *zap.Logger) (*DumpIgnore, error) {
	di := New(logger)

	if filePath != "" {
		if err := di.CompileIgnoreFile(filePath); err != nil {
			return nil, err
		}
	}

	di.CompileIgnoreLines(extraLines...)
	return di, nil
}

// Len reports the number of compiled patterns.
func (di *DumpIgnore) Len() int {
	return len(di.patterns)
}

// CompileIgnoreLines compiles a set of ignore pattern lines and appends them
// to the DumpIgnore instance.
func (di *DumpIgnore) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		lineNo := len(di.patterns) + i + 1
		regex, negate := parsePatternLine(line)
		if regex == nil {
			continue
		}
		di.patterns = append(di.patterns, &Pattern{
			Regex:  regex,
			Negate: negate,
			Line:   line,
			LineNo: lineNo,
		})
		di.logger.Debug("Compiled ignore pattern",
			zap.Int("lineNo", lineNo),
			zap.String("pattern", line),
			zap.Bool("negate", negate))
	}
}

// CompileIgnoreFile reads an ignore file, parses its lines, and appends them
// to the DumpIgnore instance. A nonexistent file is silently skipped.
func (di *DumpIgnore) CompileIgnoreFile(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			di.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", filePath))
			return nil
		}
		di.logger.Error("Failed to read ignore file", zap.String("filePath", filePath), zap.Error(err))
		return err
	}

	di.CompileIgnoreLines(strings.Split(string(content), "\n")...)
	di.logger.Debug("Compiled ignore file", zap.String("filePath", filePath), zap.Int("totalPatterns", len(di.patterns)))
	return nil
}

// MatchesPath checks if a slash-separated relative path matches any of the
// ignore patterns. Directory paths should carry a trailing slash.
func (di *DumpIgnore) MatchesPath(path string) bool {
	matches, _ := di.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern checks if a path matches any ignore pattern and
// returns the last pattern that decided the outcome.
func (di *DumpIgnore) MatchesPathWithPattern(path string) (bool, *Pattern) {
	matched := false
	var matchedPattern *Pattern

	for _, pattern := range di.patterns {
		if pattern.Regex.MatchString(path) {
			matchedPattern = pattern
			matched = !pattern.Negate
		}
	}

	return matched, matchedPattern
}

// parsePatternLine processes a line from an ignore file into a compiled
// regex and a negation flag. Returns nil for comments and blank lines.
func parsePatternLine(line string) (*regexp.Regexp, bool) {
	trimmedLine := strings.TrimSpace(line)

	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmedLine, "!") {
		negate = true
		trimmedLine = strings.TrimPrefix(trimmedLine, "!")
	}

	// Leading '#' and '!' can be escaped to be matched literally.
	if strings.HasPrefix(trimmedLine, `\#`) || strings.HasPrefix(trimmedLine, `\!`) {
		trimmedLine = trimmedLine[1:]
	}

	regexPattern := escapeSpecialChars(trimmedLine)
	regexPattern = handleDoubleStarPatterns(regexPattern)
	regexPattern = wildcardToRegex(regexPattern)
	regexPattern = anchorPattern(regexPattern, trimmedLine)

	compiledRegex, err := regexp.Compile(regexPattern)
	if err != nil {
		return nil, false
	}

	return compiledRegex, negate
}
