package crcfold

import (
	"errors"
	"fmt"
)

var (
	// ErrChecksumMismatch is returned when data does not match its expected
	// checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupported is the cause of every ErrUnsupportedImpl.
	ErrUnsupported = errors.New("implementation not supported")

	errInvalidState = errors.New("crcfold: invalid hash state")
)

// ErrUnsupportedImpl indicates a forced tier the CPU features cannot run.
//
// errors.Is(err, ErrUnsupported) holds for every ErrUnsupportedImpl.
type ErrUnsupportedImpl struct {
	Impl     Impl
	Features Features
}

func (e *ErrUnsupportedImpl) Error() string {
	return fmt.Sprintf("implementation %s not supported by cpu features [%s]", e.Impl, e.Features)
}

func (e *ErrUnsupportedImpl) Unwrap() error { return ErrUnsupported }

// ErrUnknownImpl indicates a tier name that ParseImpl does not recognize.
type ErrUnknownImpl struct {
	Name string
}

func (e *ErrUnknownImpl) Error() string {
	return fmt.Sprintf("unknown implementation %q", e.Name)
}

// MismatchError reports a checksum that differs from the expected value.
//
// errors.Is(err, ErrChecksumMismatch) holds for every MismatchError.
type MismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %08x, got %08x", e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error { return ErrChecksumMismatch }
