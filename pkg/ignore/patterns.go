package ignore

import (
	"regexp"
	"strings"
)

// Placeholder tokens stand in for '**' constructs until the single-character
// wildcard pass has run, so that pass can never rewrite generated regex
// text. NUL bytes cannot occur in pattern lines, making the tokens safe.
const (
	doubleStarMiddleToken   = "\x00dsM\x00"
	doubleStarTrailingToken = "\x00dsT\x00"
	doubleStarLeadingToken  = "\x00dsL\x00"
)

// Precompiled regular expressions used in pattern parsing.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
	singleStarPattern         = regexp.MustCompile(`\*`)
	directoryEndPattern       = regexp.MustCompile(`/$`)
	rootRelativePattern       = regexp.MustCompile(`^/`)
)

// escapeSpecialChars escapes regex special characters except for '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	specialChars := `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns replaces '**' constructs with placeholder tokens.
// The tokens are expanded to regex fragments by wildcardToRegex after the
// remaining wildcards have been converted.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddlePattern.ReplaceAllString(pattern, doubleStarMiddleToken)
	pattern = doubleStarTrailingPattern.ReplaceAllString(pattern, doubleStarTrailingToken)
	pattern = doubleStarLeadingPattern.ReplaceAllString(pattern, doubleStarLeadingToken)
	return pattern
}

// wildcardToRegex converts the wildcards '*' and '?' to regex equivalents,
// then expands the double-star placeholders. Neither wildcard crosses a
// path separator.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", `[^/]`)

	pattern = strings.ReplaceAll(pattern, doubleStarMiddleToken, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, doubleStarTrailingToken, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, doubleStarLeadingToken, `(.*/)?`)
	return pattern
}

// anchorPattern anchors the regex pattern to match the entire path.
// Directory patterns (trailing '/') match the directory and its subtree;
// other patterns match the path itself or anything beneath it.
func anchorPattern(pattern string, originalPattern string) string {
	if directoryEndPattern.MatchString(originalPattern) {
		pattern += "(.*)?$"
	} else {
		pattern += "(/.*)?$"
	}

	if rootRelativePattern.MatchString(originalPattern) {
		return "^" + strings.TrimPrefix(pattern, "/")
	}
	return "^(|.*/)" + pattern
}
