package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the subsystem an error comes from.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCatalog Category = "catalog"
	CategoryRender  Category = "render"
	CategoryPreview Category = "preview"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location points into a project file, typically daisy.yaml.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// DaisyError is a structured error with an optional file location and
// a hint on how to fix it.
type DaisyError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	Location *Location

	// Context contains the file lines surrounding Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows the correct form, e.g. a YAML snippet.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DaisyError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DaisyError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location and reads the surrounding lines.
func (e *DaisyError) WithLocation(file string, line, column int) *DaisyError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, contextSize)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DaisyError) WithSuggestion(s string) *DaisyError {
	e.Suggestion = s
	return e
}

// WithExample adds an example of the correct form.
func (e *DaisyError) WithExample(ex string) *DaisyError {
	e.Example = ex
	return e
}

// WithDetail replaces the detailed explanation.
func (e *DaisyError) WithDetail(d string) *DaisyError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *DaisyError) Wrap(err error) *DaisyError {
	e.Wrapped = err
	return e
}

// contextSize is the number of file lines shown around a location.
const contextSize = 5

// contextStart returns the line number of the first context line.
func contextStart(targetLine, size int) int {
	if start := targetLine - size/2; start > 1 {
		return start
	}
	return 1
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := contextStart(targetLine, contextSize)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a DaisyError from a registered error code.
func New(code string) *DaisyError {
	template, ok := registry[code]
	if !ok {
		return &DaisyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DaisyError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new DaisyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *DaisyError {
	return &DaisyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a DaisyError with the given code. Errors that
// already carry a DaisyError anywhere in their chain are returned as is.
func FromError(err error, code string) *DaisyError {
	if err == nil {
		return nil
	}
	var de *DaisyError
	if stderrors.As(err, &de) {
		return de
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first DaisyError in err's chain, or "".
func Code(err error) string {
	var de *DaisyError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ""
}
