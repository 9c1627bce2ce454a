// SPDX-License-Identifier: MIT
// Package dispatch: sentinel errors and the MultiplyError envelope.

package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerCommunication signals that a task could not be handed to its
	// worker or that its completion channel closed without a value.
	ErrWorkerCommunication = errors.New("dispatch: worker communication failure")

	// ErrPoolElementType is returned when WithPool receives a pool whose
	// element type differs from the operands'.
	ErrPoolElementType = errors.New("dispatch: pool element type mismatch")
)

// Operation tags carried by MultiplyError.Op.
const (
	opValidate = "validate"
	opPool     = "pool"
	opDispatch = "dispatch"
	opCollect  = "collect"
	opAssemble = "assemble"
)

// noCell marks a MultiplyError that does not concern a single output cell.
const noCell = -1

// MultiplyError is the failure of one multiplication. Op names the stage
// (validate, pool, dispatch, collect, assemble); Index is the destination
// cell involved or -1. Err is matched with errors.Is / errors.As, e.g.
// against matrix.ErrDimensionMismatch, ErrWorkerCommunication,
// worker.ErrTaskFailed or context.Canceled.
type MultiplyError struct {
	Op    string
	Index int
	Err   error
}

// Error implements the error interface.
func (e *MultiplyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dispatch: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("dispatch: %s: cell %d: %v", e.Op, e.Index, e.Err)
}

// Unwrap exposes the cause.
func (e *MultiplyError) Unwrap() error { return e.Err }
