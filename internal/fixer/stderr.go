package fixer

import (
	"bufio"
	"io"
	"strings"

	"github.com/dshills/phpfix/internal/notify"
)

// Recognized php-cs-fixer stderr markers. These match the message text
// of php-cs-fixer 2.x and 3.x; the substring match is a fallback
// heuristic, and any line that matches neither marker is treated as
// informational diagnostic output only.
const (
	// lintErrorMarker precedes the list of files rejected by the lint
	// pass that runs before fixing.
	lintErrorMarker = "Files that were not fixed due to errors reported during linting before fixing:"

	// legacyConfigMarker appears when the workspace still carries a
	// config file under the pre-3.0 name.
	legacyConfigMarker = "Configuration file `.php_cs` is outdated"
)

// scanStderr reads the process stderr line by line and raises
// notifications for recognized markers, independent of the eventual
// exit code.
func (c *Coordinator) scanStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c.classifyStderrLine(scanner.Text())
	}
}

// classifyStderrLine inspects one stderr line for the known markers.
func (c *Coordinator) classifyStderrLine(line string) {
	if idx := strings.Index(line, lintErrorMarker); idx >= 0 {
		detail := strings.TrimSpace(line[idx+len(lintErrorMarker):])
		c.notifier.Notify(notify.Notification{
			Level:   notify.LevelError,
			Message: strings.TrimSpace(line[idx:]),
			Detail:  detail,
		})
		return
	}

	if strings.Contains(line, legacyConfigMarker) {
		c.notifier.Info(strings.TrimSpace(line))
		return
	}

	if line != "" {
		c.log.Debug("php-cs-fixer: %s", line)
	}
}
