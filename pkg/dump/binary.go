package dump

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// isBinaryFile checks if a file is likely to be binary by reading its first
// few bytes and checking for null bytes or a high ratio of non-printable
// characters. The extension allowlist decides inclusion either way; this is
// only used to warn about suspicious matches.
func isBinaryFile(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	if bytes.Contains(buffer, []byte{0}) {
		return true, nil
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	if len(buffer) == 0 {
		return false, nil // Empty files are considered text
	}
	return float64(nonPrintable)/float64(len(buffer)) > 0.3, nil
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
