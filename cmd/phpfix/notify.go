package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dshills/phpfix/internal/notify"
)

// terminalSink prints notifications to a terminal stream, colored by
// severity.
type terminalSink struct {
	out     io.Writer
	info    *color.Color
	success *color.Color
	errc    *color.Color
}

func newTerminalSink(out io.Writer, noColor bool) *terminalSink {
	s := &terminalSink{
		out:     out,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		errc:    color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{s.info, s.success, s.errc} {
			c.DisableColor()
		}
	}
	return s
}

// attach subscribes the sink to a dispatcher.
func (s *terminalSink) attach(d *notify.Dispatcher) *notify.Subscription {
	return d.Subscribe(s.show)
}

// show prints a single notification.
func (s *terminalSink) show(n notify.Notification) {
	c := s.info
	switch n.Level {
	case notify.LevelSuccess:
		c = s.success
	case notify.LevelError:
		c = s.errc
	}
	_, _ = fmt.Fprintln(s.out, c.Sprint(n.Message))
	if n.Detail != "" {
		_, _ = fmt.Fprintln(s.out, n.Detail)
	}
}
