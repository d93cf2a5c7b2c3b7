package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"empty buffer", ErrEmptyBuffer, false},
		{"index out of range", ErrIndexOutOfRange, false},
		{"timeout in message", fmt.Errorf("operation timeout occurred"), true},
		{"temporary in message", fmt.Errorf("temporary failure"), true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"empty buffer", ErrEmptyBuffer, false},
		{"corrupted in message", fmt.Errorf("storage corrupted"), true},
		{"out of memory in message", fmt.Errorf("out of memory"), true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"empty buffer", ErrEmptyBuffer, true},
		{"index out of range", ErrIndexOutOfRange, true},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"wrapped empty buffer", fmt.Errorf("consume: %w", ErrEmptyBuffer), true},
		{"plain error", fmt.Errorf("something odd"), false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"empty buffer", ErrEmptyBuffer, ErrorInvalid},
		{"index out of range", ErrIndexOutOfRange, ErrorInvalid},
		{"context deadline", context.DeadlineExceeded, ErrorTransient},
		{"fatal pattern", fmt.Errorf("data corrupted"), ErrorFatal},
		{"unknown error", fmt.Errorf("something odd"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("base failure")

	err := Wrap(base, "RingBuffer", "Get", "consuming read")
	if err == nil {
		t.Fatal("expected wrapped error")
	}

	expected := "RingBuffer.Get: consuming read failed: base failure"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, base) {
		t.Error("wrapped error should match base via errors.Is")
	}

	if Wrap(nil, "RingBuffer", "Get", "consuming read") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapClassified(t *testing.T) {
	tests := []struct {
		name     string
		wrap     func(error, string, string, string) error
		expected ErrorClass
	}{
		{"WrapTransient", WrapTransient, ErrorTransient},
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
		{"WrapFatal", WrapFatal, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.wrap(ErrEmptyBuffer, "RingBuffer", "Get", "consuming read")
			if err == nil {
				t.Fatal("expected error")
			}

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected a ClassifiedError")
			}
			if ce.Class != test.expected {
				t.Errorf("expected class %v, got %v", test.expected, ce.Class)
			}
			if ce.Component != "RingBuffer" {
				t.Errorf("expected component RingBuffer, got %s", ce.Component)
			}
			if ce.Operation != "Get" {
				t.Errorf("expected operation Get, got %s", ce.Operation)
			}

			// Sentinel must survive the wrapping chain
			if !errors.Is(err, ErrEmptyBuffer) {
				t.Error("expected errors.Is to find ErrEmptyBuffer through the chain")
			}
			if !strings.Contains(err.Error(), "RingBuffer.Get") {
				t.Errorf("expected message to contain call context, got %q", err.Error())
			}

			if test.wrap(nil, "RingBuffer", "Get", "x") != nil {
				t.Error("wrapping nil should return nil")
			}
		})
	}
}

func TestClassifiedError_Error(t *testing.T) {
	withMessage := &ClassifiedError{Err: fmt.Errorf("inner"), Message: "outer"}
	if withMessage.Error() != "outer" {
		t.Errorf("expected message to win, got %q", withMessage.Error())
	}

	withoutMessage := &ClassifiedError{Err: fmt.Errorf("inner")}
	if withoutMessage.Error() != "inner" {
		t.Errorf("expected inner error, got %q", withoutMessage.Error())
	}
}
