// Package errors provides structured error types for the memory engine.
//
// Errors are categorized by Op (which operation failed) and Kind (why it
// failed), and always carry the offending address. Callers match on Kind
// rather than parse message text:
//
//	_, err := mem.ReadWord(addr)
//	var merr *errors.Error
//	if stderrors.As(err, &merr) && merr.Kind == errors.KindOutOfBounds {
//	    // halt the simulated program
//	}
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpWrite, errors.KindUnaligned).
//		Address(0x10010001).
//		Detail("address is not a multiple of the word size 4").
//		Build()
//
// Or use the convenience constructors for the two failure modes:
//
//	err := errors.Unaligned(errors.OpRead, addr, wordSize)
//	err := errors.OutOfBounds(errors.OpWrite, addr, cellCount)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
