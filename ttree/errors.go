// errors.go: typed decode diagnostics and caret-snippet rendering
//
// All failures the package can produce are *Error values carrying a Kind,
// a message, and (for errors raised while scanning or building) a 1-based
// line and 0-based column into the source text. Errors raised at lookup
// time have no source position and render without one.
//
// WrapErrorWithSource turns a positioned *Error into a readable snippet
// with a caret pointing at the offending column:
//
//	FORMAT ERROR at 3:12: missing opening brace
//
//	   2 | 0.5, 0.25
//	   3 |            1.0
//	     |           ^
//	   4 | }
//
// Non-*Error values pass through unchanged.
package ttree

import (
	"errors"
	"fmt"
	"strings"
)

// DiagKind discriminates the failure classes of the decoder.
type DiagKind int

const (
	// DiagLex: the scanner hit a byte sequence that is not part of the
	// format (malformed number, stray character). The legacy parser
	// silently skipped such bytes; this package reports them.
	DiagLex DiagKind = iota

	// DiagFormat: structurally malformed document (missing opening brace,
	// unparsable numeric literal).
	DiagFormat

	// DiagIncomplete: the token stream ended before a matching '}'.
	DiagIncomplete

	// DiagStructure: the built tree does not have the shape the variant's
	// index tables assume (wrong arity, empty branch).
	DiagStructure
)

func (k DiagKind) header() string {
	switch k {
	case DiagLex:
		return "LEXICAL ERROR"
	case DiagFormat:
		return "FORMAT ERROR"
	case DiagIncomplete:
		return "INCOMPLETE INPUT"
	case DiagStructure:
		return "STRUCTURE ERROR"
	}
	return "ERROR"
}

// Error is the single diagnostic type of the package.
// Line is 1-based; Col is 0-based (rendered 1-based). Line == 0 means the
// error has no source position (it was raised against a built tree).
type Error struct {
	Kind DiagKind
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind.header(), e.Line, e.Col+1, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind.header(), e.Msg)
}

// IsIncomplete reports whether err is a DiagIncomplete decode error,
// i.e. the input ended mid-tree. Useful for callers that accumulate
// partial input before retrying a parse.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == DiagIncomplete
}

// IsStructural reports whether err is a DiagStructure error.
func IsStructural(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == DiagStructure
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet
// of src when err is a positioned *Error. Other errors are returned as-is.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label shown in the
// header ("FORMAT ERROR in <name> at ...").
func WrapErrorWithName(err error, srcName, src string) error {
	var e *Error
	if !errors.As(err, &e) || e.Line <= 0 {
		return err
	}
	// Col is 0-based; render as 1-based.
	return fmt.Errorf("%s", snippet(src, e.Kind.header(), srcName, e.Line, e.Col+1, e.Msg))
}

// snippet builds a Python-like context block with a header and a caret.
// It shows at most one previous and one next line when available.
// Coordinates are treated as 1-based and clamped to the source bounds.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
