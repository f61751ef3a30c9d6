package errors

import (
	"fmt"
	"strings"
)

// Op indicates which memory operation the error occurred in
type Op string

const (
	OpRead    Op = "read"    // ReadWord
	OpWrite   Op = "write"   // WriteWord
	OpLoad    Op = "load"    // AllocateData
	OpUpdate  Op = "update"  // UpdateDataMemory
	OpResolve Op = "resolve" // standalone address resolution
)

// Kind categorizes the error
type Kind string

const (
	// KindNone is the zero Kind, reported by a Resolution that succeeded.
	KindNone Kind = ""

	KindUnaligned   Kind = "unaligned"
	KindOutOfBounds Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the memory engine.
// It carries the offending address so callers can match on Kind and report
// the address without parsing the message.
type Error struct {
	Cause   error
	Op      Op
	Kind    Kind
	Address uint32
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	fmt.Fprintf(&b, " at address 0x%08X", e.Address)

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when their
// Op and Kind agree; the address is deliberately excluded so sentinel-style
// comparisons work for any offending address.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Address sets the offending address
func (b *Builder) Address(addr uint32) *Builder {
	b.err.Address = addr
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the two failure modes

// Unaligned creates an unaligned-access error
func Unaligned(op Op, addr uint32, wordSize uint32) *Error {
	return &Error{
		Op:      op,
		Kind:    KindUnaligned,
		Address: addr,
		Detail:  fmt.Sprintf("address is not a multiple of the word size %d", wordSize),
	}
}

// OutOfBounds creates an out-of-bounds error
func OutOfBounds(op Op, addr uint32, cellCount int) *Error {
	return &Error{
		Op:      op,
		Kind:    KindOutOfBounds,
		Address: addr,
		Detail:  fmt.Sprintf("address resolves outside the %d-cell storage array", cellCount),
	}
}
