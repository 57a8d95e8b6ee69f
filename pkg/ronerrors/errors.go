// Package ronerrors provides structured errors for ron-fun with a kind, a cause
// chain, key-value details and a captured stack.
//
// # Overview
//
// Configuration in ron-fun is loaded once at startup. Anything that goes wrong
// while doing so is reported as a single kind, KindConfigLoad, and is fatal:
// callers log it and exit rather than retry.
//
// # Basic Usage
//
//	if doc.GA == nil {
//	    return ronerrors.New(ronerrors.KindConfigLoad, "missing required field").
//	        WithDetail("config", "analytics").
//	        WithDetail("field", "ga")
//	}
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return ronerrors.Wrap(err, ronerrors.KindConfigLoad, "read config file").
//	        WithDetail("path", path)
//	}
//
// # Thread Safety
//
// WithDetail mutates the receiver. Finish building an error before sharing it
// across goroutines.
package ronerrors

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// Kind categorizes an error.
type Kind string

const (
	// KindConfigLoad marks a malformed, missing or unreadable configuration
	// literal. It is always fatal at load time.
	KindConfigLoad Kind = "config_load"
	// KindInternal marks a programming error, such as asking for an event
	// name that is not part of the closed set.
	KindInternal Kind = "internal"
)

// Error is a structured error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Details map[string]any
	Stack   []StackFrame
}

// StackFrame is a single frame of the call stack captured at creation time.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error renders the kind, the message, the details sorted by key and the cause.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Details[k])
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the cause so errors.Is and errors.As see through the wrapper.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key-value pair and returns the receiver for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Detail returns the value stored under key.
func (e *Error) Detail(key string) (any, bool) {
	v, ok := e.Details[key]
	return v, ok
}

// New creates an error of the given kind and captures the caller's stack.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf is New with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps err with a kind and message. The stack of an already structured
// cause is kept. Wrap returns nil when err is nil.
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Kind:    kind,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// IsConfigLoad reports whether err is a configuration load failure.
func IsConfigLoad(err error) bool {
	return IsKind(err, KindConfigLoad)
}

func captureStack(skip int) []StackFrame {
	const maxFrames = 32

	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}
