package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"argot/internal/dispatch"
	"argot/internal/logger"
)

// RunScript executes a script file line by line through the dispatcher.
// Blank lines and "#" comments are skipped. A failing line is reported and
// execution continues with the next line; the returned error summarizes how
// many lines failed.
func RunScript(path string, dispatcher *dispatch.Dispatcher) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open script %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	failed := 0
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := dispatcher.Run(line); err != nil {
			logger.Warn("Script line failed", "script", path, "line", lineNo, "error", err)
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("script %s: %d line(s) failed", path, failed)
	}
	return nil
}
