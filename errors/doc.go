// Package errors provides standardized error handling for the ring buffer library.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input or caller logic,
// non-retryable), and Fatal (unrecoverable, stop processing).
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	value, err := buf.Get()
//	if errors.Is(err, ringerrors.ErrEmptyBuffer) {
//	    // nothing to consume yet, recoverable
//	}
//
// Wrap errors with context and classification:
//
//	if err := registry.RegisterGauge(name, "size", gauge); err != nil {
//	    return ringerrors.WrapFatal(err, "Registry", "RegisterGauge", "prometheus registration")
//	}
//
// Inspect classification when deciding how to react:
//
//	switch ringerrors.Classify(err) {
//	case ringerrors.ErrorInvalid:
//	    // caller bug, fix the call site
//	case ringerrors.ErrorTransient:
//	    // retry later
//	case ringerrors.ErrorFatal:
//	    // give up
//	}
//
// # Error Taxonomy
//
// The buffer surfaces two recoverable conditions, both classified Invalid:
//
//   - ErrEmptyBuffer: Get or Pop on an empty buffer. Check IsEmpty() first
//     or treat it as "try again later".
//   - ErrIndexOutOfRange: At(idx) with idx outside [0, Size()). Indicates a
//     caller logic error.
//
// A saturated Put is deliberately NOT an error: it is a defined no-op so
// producers can call Put unconditionally without pre-checking IsFull().
package errors
