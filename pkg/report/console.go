package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/l0lsec/datadogenumerator/pkg/enum"
)

const sectionBarWidth = 60

// ConsoleSink renders enumeration events as the color-coded terminal
// report. With noColor set it emits plain text only, which also makes
// the output byte-stable for golden tests.
type ConsoleSink struct {
	out     io.Writer
	noColor bool
}

// NewConsoleSink initializes a console sink writing to out.
func NewConsoleSink(out io.Writer, noColor bool) *ConsoleSink {
	return &ConsoleSink{out: out, noColor: noColor}
}

func (c *ConsoleSink) paint(st lipgloss.Style, text string) string {
	if c.noColor {
		return text
	}
	return st.Render(text)
}

func (c *ConsoleSink) line(st lipgloss.Style, glyph, text string) {
	fmt.Fprintln(c.out, c.paint(st, fmt.Sprintf("%s %s", glyph, text)))
}

// Section prints a report heading framed by bars.
func (c *ConsoleSink) Section(title string) {
	bar := strings.Repeat("=", sectionBarWidth)
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n",
		c.paint(headerStyle, bar),
		c.paint(headerStyle, title),
		c.paint(headerStyle, bar),
	)
}

// Probe prints one classified status line.
func (c *ConsoleSink) Probe(res enum.Result) {
	name := res.Spec.Name
	switch res.Class {
	case enum.ClassAccessible:
		c.line(successStyle, glyphSuccess, fmt.Sprintf("%s: ACCESSIBLE", name))
		if res.Spec.Description != "" {
			c.line(infoStyle, glyphInfo, fmt.Sprintf("  → %s", res.Spec.Description))
		}
	case enum.ClassForbidden:
		c.line(dangerStyle, glyphFailure, fmt.Sprintf("%s: FORBIDDEN (403)", name))
	case enum.ClassUnauthorized:
		c.line(dangerStyle, glyphFailure, fmt.Sprintf("%s: UNAUTHORIZED (401)", name))
	case enum.ClassNotFound:
		c.line(warnStyle, glyphWarn, fmt.Sprintf("%s: NOT FOUND (404)", name))
	case enum.ClassOtherStatus:
		c.line(warnStyle, glyphWarn, fmt.Sprintf("%s: Status %d", name, res.StatusCode))
	case enum.ClassTransportError:
		c.line(dangerStyle, glyphFailure, fmt.Sprintf("%s: Error - %v", name, res.Err))
	}
}

// Details prints the indented summary lines of an accessible probe.
func (c *ConsoleSink) Details(lines []string) {
	for _, l := range lines {
		c.line(infoStyle, glyphInfo, l)
	}
}

// Info prints a run-level note.
func (c *ConsoleSink) Info(text string) {
	c.line(infoStyle, glyphInfo, text)
}

// Warn prints a run-level warning.
func (c *ConsoleSink) Warn(text string) {
	c.line(warnStyle, glyphWarn, text)
}

// Fatal prints the error that ended the run early.
func (c *ConsoleSink) Fatal(err error) {
	c.line(dangerStyle, glyphFailure, err.Error())
}

// Complete prints the closing banner, legend, and tallies.
func (c *ConsoleSink) Complete(stats enum.Stats) {
	c.Section("ENUMERATION COMPLETE")
	c.Info("Review the results above to see what your API key can access")
	c.Info(fmt.Sprintf("Green %s = Accessible, Red %s = Forbidden/Unauthorized", glyphSuccess, glyphFailure))
	c.Info(fmt.Sprintf("Results: %d accessible, %d denied, %d not found, %d other, %d errors",
		stats.Accessible,
		stats.Forbidden+stats.Unauthorized,
		stats.NotFound,
		stats.Other,
		stats.Errors,
	))
}
