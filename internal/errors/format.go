package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether Format emits ANSI escapes.
var colorEnabled = true

// DisableColors makes Format and PrintError emit plain text.
func DisableColors() { colorEnabled = false }

// EnableColors turns ANSI escapes back on.
func EnableColors() { colorEnabled = true }

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string   { return paint(colorRed, text) }
func cyan(text string) string  { return paint(colorCyan, text) }
func white(text string) string { return paint(colorWhite, text) }
func gray(text string) string  { return paint(colorGray, text) }
func bold(text string) string  { return paint(colorBold, text) }

// detailWidth is the wrap width of the detail paragraph.
const detailWidth = 70

// Format renders the error for a terminal: a header, the offending file
// lines with a marker, then detail, hint, example and cause sections.
func (e *DaisyError) Format() string {
	var b strings.Builder
	b.WriteString("\n")
	e.writeHeader(&b)
	e.writeSource(&b)

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", cyan("Hint: "), e.Suggestion)
	}
	if e.Example != "" {
		fmt.Fprintf(&b, "  %s\n", cyan("Example:"))
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n", gray("Cause: "), e.Wrapped.Error())
	}
	return b.String()
}

func (e *DaisyError) writeHeader(b *strings.Builder) {
	if e.Code == "" {
		fmt.Fprintf(b, "%s%s\n\n", red(bold("ERROR: ")), white(e.Message))
		return
	}
	fmt.Fprintf(b, "%s%s%s\n\n", red(bold("ERROR ")), white(bold(e.Code+": ")), white(e.Message))
}

// writeSource prints the location and the surrounding file lines, marking
// the offending line and column.
func (e *DaisyError) writeSource(b *strings.Builder) {
	if e.Location == nil {
		return
	}
	fmt.Fprintf(b, "  %s\n\n", cyan(e.Location.String()))
	if len(e.Context) == 0 {
		return
	}

	first := contextStart(e.Location.Line, contextSize)
	for i, text := range e.Context {
		n := first + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, gray(" │ "), text)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", red("→ "), n, gray(" │ "), text)
		if col := e.Location.Column; col > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", gray("│ "), strings.Repeat(" ", col-1), red("^"))
		}
	}
	b.WriteString("\n")
}

// FormatCompact returns "file:line:col: CODE: message" with absent parts
// left out.
func (e *DaisyError) FormatCompact() string {
	parts := make([]string, 0, 3)
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Cause      string        `json:"cause,omitempty"`
}

// FormatJSON returns the error as a single-line JSON object.
func (e *DaisyError) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{File: e.Location.File, Line: e.Location.Line, Column: e.Location.Column}
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Error())
	}
	return string(data)
}

// wrapText breaks text into lines of at most width bytes, splitting on
// whitespace. A single word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(w) > width {
			lines = append(lines, w)
			continue
		}
		*last += " " + w
	}
	return lines
}

// PrintError prints a formatted error to w. Errors without a DaisyError
// in their chain get a one-line header.
func PrintError(w io.Writer, err error) {
	var de *DaisyError
	if stderrors.As(err, &de) {
		fmt.Fprint(w, de.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}
