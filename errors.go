// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"errors"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Sentinel errors re-exported from hal, so callers never need to import
// the hal package directly (spec.md §7).
var (
	ErrOutOfMemory     = hal.ErrDeviceOutOfMemory
	ErrDeviceRemoved   = hal.ErrDeviceLost
	ErrInvalidAPIUsage = hal.ErrInvalidAPIUsage
	ErrUnsupported     = hal.ErrUnsupported
	ErrTimeout         = hal.ErrTimeout
	ErrZeroArea        = hal.ErrZeroArea
)

// ErrBackendMissing is returned when CreateDevice names a backend with no
// registered factory (hal.ErrBackendNotFound carried under a vri-scoped name).
var ErrBackendMissing = hal.ErrBackendNotFound

// ErrDestroyed names use of an already-destroyed object. No operation in
// this package returns it: calls on a destroyed object are not checked.
var ErrDestroyed = errors.New("vri: object already destroyed")

// ResultError pairs a Go error with the exact numeric Result code from
// spec.md §6/§7, so callers that only check success/failure use the normal
// `if err != nil` idiom, while callers that need the taxonomy value call
// AsResult.
type ResultError struct {
	Code types.Result
	Err  error
}

func (e *ResultError) Error() string {
	if e.Err == nil {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Err.Error()
}

func (e *ResultError) Unwrap() error { return e.Err }

// AsResult maps err to its spec.md Result code. nil maps to Success; an
// error that is neither a *ResultError nor one of the hal sentinels
// checked below maps to SystemFailure.
func AsResult(err error) types.Result {
	if err == nil {
		return types.ResultSuccess
	}
	var re *ResultError
	if errors.As(err, &re) {
		return re.Code
	}
	switch {
	case errors.Is(err, hal.ErrInvalidAPIUsage):
		return types.ResultInvalidAPIUsage
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return types.ResultOutOfMemory
	case errors.Is(err, hal.ErrUnsupported), errors.Is(err, ErrBackendMissing):
		return types.ResultUnsupported
	case errors.Is(err, hal.ErrDeviceLost):
		return types.ResultDeviceRemoved
	case errors.Is(err, hal.ErrTimeout):
		return types.ResultTimeout
	case errors.Is(err, hal.ErrSurfaceOutdated), errors.Is(err, hal.ErrZeroArea):
		return types.ResultSuboptimal
	default:
		return types.ResultSystemFailure
	}
}

// wrap attaches err's mapped Result code, or returns nil unchanged.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	return &ResultError{Code: AsResult(err), Err: err}
}
