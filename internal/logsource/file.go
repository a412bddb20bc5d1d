package logsource

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tinytelemetry/sumi/internal/model"
)

// DefaultMaxLineSize is the maximum size (in bytes) of a single log line.
const DefaultMaxLineSize = 1024 * 1024 // 1MB

// Load reads the log file at path into ordered LogLines.
//
// Lines are kept verbatim (only the line terminator is stripped) and indexed
// in file order. The file is read exactly once; a missing or unreadable file
// is an error the caller treats as fatal.
func Load(path string) ([]model.LogLine, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, DefaultMaxLineSize)
	scanner.Buffer(buf, DefaultMaxLineSize)

	var lines []model.LogLine
	for scanner.Scan() {
		lines = append(lines, model.LogLine{Index: len(lines), Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return lines, nil
}
