package measurement

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProductIndex indicates a linear combination referencing a product index never registered.
	ErrUnknownProductIndex = errors.New("measurement: unknown product index")
	// ErrMissingRegister indicates an evaluation over a space lacking a required bit register.
	ErrMissingRegister = errors.New("measurement: required register missing")
	// ErrNoData indicates a required register present with zero recorded rows, so no mean exists.
	ErrNoData = errors.New("measurement: no measurement data")
	// ErrMaskRange indicates a product mask slot beyond the width of a recorded row.
	ErrMaskRange = errors.New("measurement: mask slot out of row range")
)

// UnknownProductIndexError reports which combination referenced which
// missing index. Matches ErrUnknownProductIndex under errors.Is.
type UnknownProductIndexError struct {
	Name  string // combination being defined
	Index int    // offending product index
}

func (e *UnknownProductIndexError) Error() string {
	return fmt.Sprintf("measurement: combination %q references unknown product index %d", e.Name, e.Index)
}

// Is reports target == ErrUnknownProductIndex.
func (e *UnknownProductIndexError) Is(target error) bool { return target == ErrUnknownProductIndex }

// MissingRegisterError names the register the space never delivered.
// Matches ErrMissingRegister under errors.Is.
type MissingRegisterError struct {
	Readout string
}

func (e *MissingRegisterError) Error() string {
	return fmt.Sprintf("measurement: register %q not present in results", e.Readout)
}

// Is reports target == ErrMissingRegister.
func (e *MissingRegisterError) Is(target error) bool { return target == ErrMissingRegister }

// NoDataError names the register that arrived with zero rows. Matches
// ErrNoData under errors.Is.
type NoDataError struct {
	Readout string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("measurement: register %q holds no rows, estimate undefined", e.Readout)
}

// Is reports target == ErrNoData.
func (e *NoDataError) Is(target error) bool { return target == ErrNoData }

// MaskRangeError reports a mask slot wider than a recorded row. Matches
// ErrMaskRange under errors.Is.
type MaskRangeError struct {
	Readout string
	Slot    int
	RowLen  int
}

func (e *MaskRangeError) Error() string {
	return fmt.Sprintf("measurement: mask slot %d outside row of length %d in register %q", e.Slot, e.RowLen, e.Readout)
}

// Is reports target == ErrMaskRange.
func (e *MaskRangeError) Is(target error) bool { return target == ErrMaskRange }
